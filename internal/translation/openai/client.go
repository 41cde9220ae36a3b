// Package openai translates subtitle text through any OpenAI-compatible chat
// completion API using the official SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// Name identifies the backend in configuration and cache keys.
	Name = "openai"

	defaultModel       = "gpt-4o-mini"
	defaultHTTPTimeout = 60 * time.Second
)

const systemPromptTemplate = `You translate subtitles from %s to %s.
Reply with the translation only. Keep every line break of the input.`

// Config captures the runtime settings for the API.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// Client wraps the SDK chat completion service.
type Client struct {
	client sdk.Client
	model  string
}

// Option customizes the client.
type Option func(*[]option.RequestOption)

// WithHTTPClient overrides the HTTP client used by the SDK.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *[]option.RequestOption) {
		if client != nil {
			*opts = append(*opts, option.WithHTTPClient(client))
		}
	}
}

// NewClient constructs a client using the supplied configuration. SDK-level
// retries are disabled; the translation gateway owns the retry schedule.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	requestOpts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(baseURL))
	}
	for _, opt := range opts {
		opt(&requestOpts)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client: sdk.NewClient(requestOpts...),
		model:  model,
	}
}

// Name implements translation.Backend.
func (c *Client) Name() string { return Name }

// Translate implements translation.Backend.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	params := sdk.ChatCompletionNewParams{
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.SystemMessage(fmt.Sprintf(systemPromptTemplate, source, target)),
			sdk.UserMessage(text),
		},
		Model:       c.model,
		Temperature: sdk.Float(0),
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai translate: empty choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai translate: empty content (finish_reason=%q)", resp.Choices[0].FinishReason)
	}
	return content, nil
}
