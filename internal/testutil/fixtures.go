package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user row with a provider-style identity id.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	email := fmt.Sprintf("user%d@test.com", n)
	user := &models.User{
		ID:    fmt.Sprintf("user_%d", n),
		Email: &email,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a generated name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome creates an income with the given amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount float64) *models.Income {
	t.Helper()
	return CreateTestIncomeAt(t, db, userID, amount, time.Now())
}

// CreateTestIncomeAt creates an income with an explicit creation time, for
// tests that depend on ordering or recency.
func CreateTestIncomeAt(t *testing.T, db *gorm.DB, userID string, amount float64, createdAt time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Amount: amount,
	}
	income.CreatedAt = createdAt
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense with the given amount and optional category.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount float64, categoryID *string) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, userID, amount, categoryID, time.Now())
}

// CreateTestExpenseAt creates an expense with an explicit creation time, for
// tests that depend on ordering or the 30-day advice window.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, userID string, amount float64, categoryID *string, createdAt time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     userID,
		Amount:     amount,
		CategoryID: categoryID,
	}
	expense.CreatedAt = createdAt
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
