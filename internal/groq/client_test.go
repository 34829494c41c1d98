package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatCompletion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotAuth, gotContentType string
		var gotBody completionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "hello"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "llama3-8b-8192", server.Client())
		content, err := client.ChatCompletion(context.Background(),
			[]Message{{Role: "user", Content: "hi"}}, 300, 0.7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if content != "hello" {
			t.Errorf("expected content hello, got %q", content)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("expected bearer auth, got %q", gotAuth)
		}
		if gotContentType != "application/json" {
			t.Errorf("expected JSON content type, got %q", gotContentType)
		}
		if gotBody.Model != "llama3-8b-8192" || gotBody.MaxTokens != 300 || gotBody.Temperature != 0.7 {
			t.Errorf("unexpected request body: %+v", gotBody)
		}
		if len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "hi" {
			t.Errorf("unexpected messages: %+v", gotBody.Messages)
		}
	})

	t.Run("no_choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "llama3-8b-8192", server.Client())
		content, err := client.ChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, 300, 0.7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "" {
			t.Errorf("expected empty content, got %q", content)
		}
	})

	t.Run("non_200_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "llama3-8b-8192", server.Client())
		_, err := client.ChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, 300, 0.7)
		if err == nil {
			t.Fatal("expected error for non-200 status")
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(server.URL, "secret", "llama3-8b-8192", server.Client())
		_, err := client.ChatCompletion(ctx, []Message{{Role: "user", Content: "hi"}}, 300, 0.7)
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})

	t.Run("trailing_slash_base_url", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client := NewClient(server.URL+"/", "secret", "llama3-8b-8192", server.Client())
		_, err := client.ChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, 300, 0.7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %q", gotPath)
		}
	})
}
