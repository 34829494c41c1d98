package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// historyService computes aggregate views over a user's rows.
type historyService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryServicer.
func NewHistoryService(db *gorm.DB) HistoryServicer {
	return &historyService{db: db}
}

// GetHistory returns the caller's most recent income amount and the sum of
// all their expenses. Both default to zero when no rows exist.
func (s *historyService) GetHistory(userID string) (*History, error) {
	history := &History{}

	var lastIncome models.Income
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&lastIncome).Error
	switch {
	case err == nil:
		history.LastIncome = lastIncome.Amount
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no incomes yet, keep zero
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&history.TotalExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return history, nil
}
