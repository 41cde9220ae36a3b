package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// Name identifies the backend in configuration and cache keys.
	Name = "openrouter"

	defaultBaseURL     = "https://openrouter.ai/api/v1/chat/completions"
	defaultHTTPTimeout = 60 * time.Second
)

// Config captures the runtime settings required to talk to OpenRouter.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Referer        string
	Title          string
	TimeoutSeconds int
}

// Client wraps the OpenRouter chat completion API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			Model:          strings.TrimSpace(cfg.Model),
			Referer:        strings.TrimSpace(cfg.Referer),
			Title:          strings.TrimSpace(cfg.Title),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	return client
}

// Name implements translation.Backend.
func (c *Client) Name() string { return Name }

// StatusError reports a non-2xx response from the completion endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: http %d: %s", e.StatusCode, snippet(e.Body))
}

// EmptyContentError reports a completion that carried no usable text.
type EmptyContentError struct {
	FinishReason string
	Refusal      string
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("openrouter: empty content (finish_reason=%q, refusal=%q)", e.FinishReason, e.Refusal)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Translate implements translation.Backend.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if c.cfg.APIKey == "" {
		return "", errors.New("openrouter: api key required")
	}
	body, err := c.post(ctx, chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(source, target)},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	content, err := parseCompletion(body)
	if err != nil {
		return "", err
	}
	return stripCodeFenceBlock(content), nil
}

func (c *Client) post(ctx context.Context, payload chatRequest) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openrouter: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("openrouter: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openrouter: request (timeout=%s): %w", c.httpClient.Timeout, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openrouter: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// parseCompletion returns the first non-empty choice text. Some providers
// answer with the streaming delta schema or a bare text field even when
// stream is off.
func parseCompletion(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("openrouter: malformed response: %s", snippet(string(body)))
	}
	doc := gjson.ParseBytes(body)
	if msg := doc.Get("error.message"); msg.Exists() {
		return "", fmt.Errorf("openrouter: api error: %s", strings.TrimSpace(msg.String()))
	}
	choices := doc.Get("choices").Array()
	if len(choices) == 0 {
		return "", errors.New("openrouter: empty choices")
	}
	empty := &EmptyContentError{}
	for _, choice := range choices {
		for _, path := range []string{"message.content", "delta.content", "text"} {
			if content := strings.TrimSpace(choice.Get(path).String()); content != "" {
				return content, nil
			}
		}
		if empty.FinishReason == "" {
			empty.FinishReason = choice.Get("finish_reason").String()
		}
		if empty.Refusal == "" {
			empty.Refusal = strings.TrimSpace(choice.Get("message.refusal").String())
		}
	}
	return "", empty
}

func stripCodeFenceBlock(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := trimmed[3:]
	// Drop an optional language tag on the opening fence line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.Contains(body[:nl], " ") {
		body = body[nl+1:]
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

func snippet(content string) string {
	clean := strings.Join(strings.Fields(content), " ")
	if clean == "" {
		return "<empty>"
	}
	const limit = 160
	if runes := []rune(clean); len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
