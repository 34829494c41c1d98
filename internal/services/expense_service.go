package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense. The amount must be strictly positive,
// and a category reference, if given, must belong to the caller.
func (s *expenseService) CreateExpense(userID string, amount float64, categoryID *string) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	if categoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ? AND user_id = ?", *categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	expense := &models.Expense{
		UserID:     userID,
		Amount:     amount,
		CategoryID: categoryID,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetUserExpenses returns all expenses owned by the caller, newest first,
// each with its category embedded when one is attached.
func (s *expenseService) GetUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetRecentExpenses returns up to limit of the caller's expenses created at or
// after since, newest first, with categories embedded.
func (s *expenseService) GetRecentExpenses(userID string, since time.Time, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.
		Preload("Category").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// DeleteExpense removes a single expense by id. The delete is ownership
// filtered; an id that does not exist or belongs to another user reports
// not found rather than a silent success.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// DeleteUserExpenses removes every expense owned by the caller.
func (s *expenseService) DeleteUserExpenses(userID string) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.Expense{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
