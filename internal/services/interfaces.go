package services

import (
	"context"
	"time"

	"spendwise/internal/models"
)

// UserServicer defines the contract for identity bookkeeping.
type UserServicer interface {
	EnsureUser(userID string, email *string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID string, amount float64) (*models.Income, error)
	GetUserIncomes(userID string) ([]models.Income, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID string, amount float64, categoryID *string) (*models.Expense, error)
	GetUserExpenses(userID string) ([]models.Expense, error)
	GetRecentExpenses(userID string, since time.Time, limit int) ([]models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	DeleteUserExpenses(userID string) error
}

// History is the aggregate view over a user's transaction rows.
type History struct {
	LastIncome    float64 `json:"lastIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
}

// HistoryServicer defines the contract for aggregate reads.
type HistoryServicer interface {
	GetHistory(userID string) (*History, error)
}

// LedgerServicer defines the contract for whole-ledger operations.
type LedgerServicer interface {
	ClearAll(userID string) error
}

// AdvisorServicer defines the contract for AI-generated savings tips.
type AdvisorServicer interface {
	GenerateSavingsTips(ctx context.Context, userID string) (string, error)
}
