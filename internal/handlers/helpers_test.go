package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectIdentity fakes an authenticated request by setting the context keys
// the auth middleware would set.
func injectIdentity(userID string, email *string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		if email != nil {
			c.Set(middleware.ContextEmail, *email)
		}
		c.Next()
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
}

// Function-field mocks for each service interface.

type mockCategoryService struct {
	createFn func(userID, name string) (*models.Category, error)
	listFn   func(userID string) ([]models.Category, error)
}

func (m *mockCategoryService) CreateCategory(userID, name string) (*models.Category, error) {
	return m.createFn(userID, name)
}

func (m *mockCategoryService) GetUserCategories(userID string) ([]models.Category, error) {
	return m.listFn(userID)
}

type mockIncomeService struct {
	createFn func(userID string, amount float64) (*models.Income, error)
	listFn   func(userID string) ([]models.Income, error)
}

func (m *mockIncomeService) CreateIncome(userID string, amount float64) (*models.Income, error) {
	return m.createFn(userID, amount)
}

func (m *mockIncomeService) GetUserIncomes(userID string) ([]models.Income, error) {
	return m.listFn(userID)
}

type mockExpenseService struct {
	createFn    func(userID string, amount float64, categoryID *string) (*models.Expense, error)
	listFn      func(userID string) ([]models.Expense, error)
	recentFn    func(userID string, since time.Time, limit int) ([]models.Expense, error)
	deleteFn    func(userID, expenseID string) error
	deleteAllFn func(userID string) error
}

func (m *mockExpenseService) CreateExpense(userID string, amount float64, categoryID *string) (*models.Expense, error) {
	return m.createFn(userID, amount, categoryID)
}

func (m *mockExpenseService) GetUserExpenses(userID string) ([]models.Expense, error) {
	return m.listFn(userID)
}

func (m *mockExpenseService) GetRecentExpenses(userID string, since time.Time, limit int) ([]models.Expense, error) {
	return m.recentFn(userID, since, limit)
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	return m.deleteFn(userID, expenseID)
}

func (m *mockExpenseService) DeleteUserExpenses(userID string) error {
	return m.deleteAllFn(userID)
}

type mockUserService struct {
	ensureFn func(userID string, email *string) (*models.User, error)
}

func (m *mockUserService) EnsureUser(userID string, email *string) (*models.User, error) {
	return m.ensureFn(userID, email)
}

type mockHistoryService struct {
	historyFn func(userID string) (*services.History, error)
}

func (m *mockHistoryService) GetHistory(userID string) (*services.History, error) {
	return m.historyFn(userID)
}

type mockLedgerService struct {
	clearFn func(userID string) error
}

func (m *mockLedgerService) ClearAll(userID string) error {
	return m.clearFn(userID)
}

type mockAdvisorService struct {
	tipsFn func(ctx context.Context, userID string) (string, error)
}

func (m *mockAdvisorService) GenerateSavingsTips(ctx context.Context, userID string) (string, error) {
	return m.tipsFn(ctx, userID)
}

const testUserID = "user_2abc123"

func strPtr(s string) *string { return &s }

// newRouter mounts a handler func behind the fake identity middleware.
func newRouter(method, path string, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, injectIdentity(testUserID, strPtr("user@example.com")), handler)
	return router
}
