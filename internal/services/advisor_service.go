package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/groq"
)

const (
	// Window and cap for the expense data fed to the model.
	adviceWindow      = 30 * 24 * time.Hour
	adviceExpenseCap  = 100
	adviceMaxTokens   = 300
	adviceTemperature = 0.7

	// fallbackTips is returned when the model produces no content at all.
	fallbackTips = "No tips available."
)

const tipsPromptTemplate = `
You are a helpful and friendly personal finance assistant.
Analyze the last 30 days of user expenses and provide 3 actionable savings tips based on the data.

Expenses: %s
Please list the tips clearly, numbered 1, 2, and 3.
`

// advisorService generates savings tips from recent spending.
type advisorService struct {
	expenses ExpenseServicer
	ai       *groq.Client
}

// NewAdvisorService creates a new AdvisorServicer.
func NewAdvisorService(expenses ExpenseServicer, ai *groq.Client) AdvisorServicer {
	return &advisorService{expenses: expenses, ai: ai}
}

// GenerateSavingsTips loads the caller's last 30 days of expenses (newest
// first, capped at 100 rows), embeds them verbatim in the prompt, and asks
// the completion service for three numbered tips. The generated text is
// returned unmodified; an empty completion yields a fixed fallback. A caller
// with no recent expenses still gets a response.
func (s *advisorService) GenerateSavingsTips(ctx context.Context, userID string) (string, error) {
	since := time.Now().Add(-adviceWindow)
	expenses, err := s.expenses.GetRecentExpenses(userID, since, adviceExpenseCap)
	if err != nil {
		return "", err
	}

	serialized, err := json.Marshal(expenses)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	prompt := fmt.Sprintf(tipsPromptTemplate, serialized)

	tips, err := s.ai.ChatCompletion(ctx,
		[]groq.Message{{Role: "user", Content: prompt}},
		adviceMaxTokens, adviceTemperature)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}

	if tips == "" {
		return fallbackTips, nil
	}
	return tips, nil
}
