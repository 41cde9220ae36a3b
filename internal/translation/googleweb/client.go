// Package googleweb calls the keyless Google Translate web endpoint used by
// browser extensions. Responses are nested JSON arrays of sentence segments.
package googleweb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// Name identifies the backend in configuration and cache keys.
	Name = "googleweb"

	defaultBaseURL     = "https://translate.googleapis.com/translate_a/single"
	defaultHTTPTimeout = 30 * time.Second
)

// Config captures the runtime settings for the web endpoint.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Client issues single translation requests.
type Client struct {
	baseURL    string
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
		baseURL:    strings.TrimSpace(cfg.BaseURL),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	return client
}

// Name implements translation.Backend.
func (c *Client) Name() string { return Name }

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("googleweb request: http %d: %s", e.StatusCode, snippet(e.Body))
}

// Translate implements translation.Backend.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if source == "" || target == "" {
		return "", errors.New("googleweb translate: source and target languages required")
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("googleweb request: parse url: %w", err)
	}
	query := endpoint.Query()
	query.Set("client", "gtx")
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("dt", "t")
	query.Set("ie", "UTF-8")
	query.Set("oe", "UTF-8")
	endpoint.RawQuery = query.Encode()

	form := url.Values{}
	form.Set("q", text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("googleweb request: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("googleweb request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("googleweb request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return parseResponse(body)
}

// parseResponse joins the translated segment of every sentence entry in the
// first array of the payload: [[["Hello.","Hei.",...],["World","Maailma",...]],...].
func parseResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("googleweb response: invalid json: %s", snippet(string(body)))
	}
	segments := gjson.GetBytes(body, "0")
	if !segments.IsArray() {
		return "", fmt.Errorf("googleweb response: unexpected shape: %s", snippet(string(body)))
	}
	var b strings.Builder
	segments.ForEach(func(_, segment gjson.Result) bool {
		if part := segment.Get("0"); part.Type == gjson.String {
			b.WriteString(part.String())
		}
		return true
	})
	return b.String(), nil
}

func snippet(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	const limit = 160
	runes := []rune(body)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	if body == "" {
		return "<empty>"
	}
	return body
}
