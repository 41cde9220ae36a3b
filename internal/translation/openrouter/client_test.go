package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"translatesrt/internal/translation"
)

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{"content": content},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}
}

func TestClientTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test" {
			t.Fatalf("authorization = %q", got)
		}
		if got := r.Header.Get("X-Title"); got != "translatesrt" {
			t.Fatalf("x-title = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "demo-model" || len(req.Messages) != 2 {
			t.Fatalf("unexpected request %+v", req)
		}
		if !strings.Contains(req.Messages[0].Content, "from fi to en") {
			t.Fatalf("system prompt missing languages: %q", req.Messages[0].Content)
		}
		if req.Messages[1].Content != "Hei.\nMoi." {
			t.Fatalf("user content = %q", req.Messages[1].Content)
		}
		completionHandler(t, "Hello.\nHi.")(w, r)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model", Title: "translatesrt"})
	got, err := client.Translate(context.Background(), "Hei.\nMoi.", "fi", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello.\nHi." {
		t.Fatalf("Translate = %q", got)
	}
}

func TestClientTranslateStripsCodeFence(t *testing.T) {
	server := httptest.NewServer(completionHandler(t, "```text\nHello.\n```"))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	got, err := client.Translate(context.Background(), "Hei.", "fi", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello." {
		t.Fatalf("Translate = %q", got)
	}
}

func TestClientRequiresAPIKey(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.Translate(context.Background(), "Hei.", "fi", "en"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestClientMakesOneRequestPerTranslate(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	_, err := client.Translate(context.Background(), "Hei.", "fi", "en")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 status error, got %v", err)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("error %q does not carry the response body", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}

func TestGatewayOwnsRetrySchedule(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var waits []time.Duration
	gateway := translation.NewGateway(NewClient(Config{APIKey: "test", BaseURL: server.URL}), translation.Options{
		Source:      "fi",
		Target:      "en",
		MaxAttempts: 5,
		BackoffUnit: time.Minute,
		Sleeper:     func(d time.Duration) { waits = append(waits, d) },
	})
	got, err := gateway.Translate(context.Background(), "Hei.")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "" {
		t.Fatalf("Translate = %q, want empty after exhaustion", got)
	}
	if calls.Load() != 5 {
		t.Fatalf("http requests = %d, want 5", calls.Load())
	}
	want := []time.Duration{time.Minute, 2 * time.Minute, 3 * time.Minute, 4 * time.Minute}
	if len(waits) != len(want) {
		t.Fatalf("waits = %v, want %v", waits, want)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Fatalf("waits = %v, want %v", waits, want)
		}
	}
}

func TestClientEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"","refusal":"no"},"finish_reason":"length"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	_, err := client.Translate(context.Background(), "Hei.", "fi", "en")
	var emptyErr *EmptyContentError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyContentError, got %v", err)
	}
	if emptyErr.FinishReason != "length" || emptyErr.Refusal != "no" {
		t.Fatalf("empty content error = %+v", emptyErr)
	}
}

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "message", body: `{"choices":[{"message":{"content":" Hello. "}}]}`, want: "Hello."},
		{name: "delta", body: `{"choices":[{"delta":{"content":"Hi."}}]}`, want: "Hi."},
		{name: "text", body: `{"choices":[{"text":"Hey."}]}`, want: "Hey."},
		{name: "second choice", body: `{"choices":[{"message":{"content":""}},{"message":{"content":"B"}}]}`, want: "B"},
		{name: "api error", body: `{"error":{"message":"quota"}}`, wantErr: true},
		{name: "no choices", body: `{"choices":[]}`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCompletion([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCompletion: %v", err)
			}
			if got != tt.want {
				t.Fatalf("parseCompletion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCodeFenceBlock(t *testing.T) {
	tests := map[string]string{
		"plain":                 "plain",
		"```\nHello\n```":       "Hello",
		"```text\nA\nB\n```":    "A\nB",
		"```Hello there```":     "Hello there",
		"  spaced answer  \n":   "spaced answer",
	}
	for in, want := range tests {
		if got := stripCodeFenceBlock(in); got != want {
			t.Fatalf("stripCodeFenceBlock(%q) = %q, want %q", in, got, want)
		}
	}
}
