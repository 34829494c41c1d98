package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spendwise/internal/groq"
	"spendwise/internal/handlers"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/testutil"
	"spendwise/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// setupRouter wires the full HTTP stack against a fresh in-memory database,
// with the completion client pointed at aiBaseURL.
func setupRouter(t *testing.T, aiBaseURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	aiClient := groq.NewClient(aiBaseURL, "test-key", "llama3-8b-8192", &http.Client{Timeout: 5 * time.Second})

	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	historyService := services.NewHistoryService(db)
	ledgerService := services.NewLedgerService(db)
	advisorService := services.NewAdvisorService(expenseService, aiClient)

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	historyHandler := handlers.NewHistoryHandler(userService, historyService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	suggestionHandler := handlers.NewSuggestionHandler(advisorService, 5*time.Second)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())

	category := protected.Group("/category")
	category.GET("", categoryHandler.List)
	category.POST("", categoryHandler.Create)

	expense := protected.Group("/expense")
	expense.GET("", expenseHandler.List)
	expense.POST("", expenseHandler.Create)
	expense.DELETE("", expenseHandler.DeleteAll)
	expense.DELETE("/:id", expenseHandler.Delete)

	income := protected.Group("/income")
	income.GET("", incomeHandler.List)
	income.POST("", incomeHandler.Create)

	protected.GET("/history", historyHandler.Get)
	protected.DELETE("/clear-all", ledgerHandler.ClearAll)
	protected.POST("/ai/suggestions", suggestionHandler.Suggest)

	return router, db
}

// tokenFor mints a signed identity token for the given user.
func tokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := middleware.SignIdentityToken(userID, email, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign identity token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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
