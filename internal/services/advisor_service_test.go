package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spendwise/internal/groq"
	"spendwise/internal/testutil"
)

// fakeCompletionServer returns an httptest server speaking the
// chat-completions wire format, recording the last request body.
func fakeCompletionServer(t *testing.T, content string, status int, lastBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if lastBody != nil {
			if err := json.NewDecoder(r.Body).Decode(lastBody); err != nil {
				t.Errorf("failed to decode completion request: %v", err)
			}
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateSavingsTips(t *testing.T) {
	t.Run("returns_model_output", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, 42.50, nil)

		var body map[string]any
		server := fakeCompletionServer(t, "1. Cook at home\n2. Cancel subscriptions\n3. Set a budget", http.StatusOK, &body)
		defer server.Close()

		ai := groq.NewClient(server.URL, "test-key", "llama3-8b-8192", server.Client())
		svc := NewAdvisorService(NewExpenseService(db), ai)

		tips, err := svc.GenerateSavingsTips(context.Background(), user.ID)
		testutil.AssertNoError(t, err)

		if !strings.Contains(tips, "Cook at home") {
			t.Errorf("expected model output returned verbatim, got %q", tips)
		}

		// Request must carry the configured model and sampling settings
		if body["model"] != "llama3-8b-8192" {
			t.Errorf("expected model llama3-8b-8192, got %v", body["model"])
		}
		if body["max_tokens"] != float64(300) {
			t.Errorf("expected max_tokens 300, got %v", body["max_tokens"])
		}
		if body["temperature"] != 0.7 {
			t.Errorf("expected temperature 0.7, got %v", body["temperature"])
		}

		messages, ok := body["messages"].([]any)
		if !ok || len(messages) != 1 {
			t.Fatalf("expected a single prompt message, got %v", body["messages"])
		}
		prompt, _ := messages[0].(map[string]any)["content"].(string)
		if !strings.Contains(prompt, "42.5") {
			t.Errorf("expected recent expense data embedded in the prompt, got %q", prompt)
		}
		if !strings.Contains(prompt, "3 actionable savings tips") {
			t.Errorf("expected tips instruction in the prompt, got %q", prompt)
		}
	})

	t.Run("no_expenses_still_asks", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		server := fakeCompletionServer(t, "1. Keep it up", http.StatusOK, nil)
		defer server.Close()

		ai := groq.NewClient(server.URL, "test-key", "llama3-8b-8192", server.Client())
		svc := NewAdvisorService(NewExpenseService(db), ai)

		tips, err := svc.GenerateSavingsTips(context.Background(), user.ID)
		testutil.AssertNoError(t, err)
		if tips != "1. Keep it up" {
			t.Errorf("expected model output, got %q", tips)
		}
	})

	t.Run("empty_completion_falls_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		server := fakeCompletionServer(t, "", http.StatusOK, nil)
		defer server.Close()

		ai := groq.NewClient(server.URL, "test-key", "llama3-8b-8192", server.Client())
		svc := NewAdvisorService(NewExpenseService(db), ai)

		tips, err := svc.GenerateSavingsTips(context.Background(), user.ID)
		testutil.AssertNoError(t, err)
		if tips != "No tips available." {
			t.Errorf("expected fallback tips, got %q", tips)
		}
	})

	t.Run("upstream_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		server := fakeCompletionServer(t, "", http.StatusInternalServerError, nil)
		defer server.Close()

		ai := groq.NewClient(server.URL, "test-key", "llama3-8b-8192", server.Client())
		svc := NewAdvisorService(NewExpenseService(db), ai)

		_, err := svc.GenerateSavingsTips(context.Background(), user.ID)
		testutil.AssertAppError(t, err, "AI_UNAVAILABLE")
	})
}
