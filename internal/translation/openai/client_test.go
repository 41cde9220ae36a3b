package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClientTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("authorization = %q", got)
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "demo-model" || len(req.Messages) != 2 {
			t.Fatalf("unexpected request %+v", req)
		}
		if req.Messages[1].Content != "Hei." {
			t.Fatalf("user content = %q", req.Messages[1].Content)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 0,
			"model": "demo-model",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": " Hello. "}}]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL + "/v1/", Model: "demo-model"})
	got, err := client.Translate(context.Background(), "Hei.", "fi", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello." {
		t.Fatalf("Translate = %q", got)
	}
}

func TestClientTranslateErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL + "/v1/"})
	if _, err := client.Translate(context.Background(), "Hei.", "fi", "en"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 (gateway owns retries)", calls.Load())
	}
}

func TestClientSkipsEmptyText(t *testing.T) {
	client := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1/"})
	got, err := client.Translate(context.Background(), "   ", "fi", "en")
	if err != nil || got != "" {
		t.Fatalf("Translate = %q, %v", got, err)
	}
}
