package services

import (
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income. The amount must be strictly positive;
// nothing is persisted otherwise.
func (s *incomeService) CreateIncome(userID string, amount float64) (*models.Income, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	income := &models.Income{
		UserID: userID,
		Amount: amount,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetUserIncomes returns all incomes owned by the caller, newest first.
func (s *incomeService) GetUserIncomes(userID string) ([]models.Income, error) {
	var incomes []models.Income
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}
