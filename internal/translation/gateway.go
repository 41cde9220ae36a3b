package translation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"translatesrt/internal/logging"
)

const defaultMaxAttempts = 5

// Options configures a Gateway.
type Options struct {
	Source      string
	Target      string
	MaxAttempts int
	// BackoffUnit is multiplied by the failed attempt number to get the wait
	// before the next attempt. Zero disables waiting.
	BackoffUnit time.Duration
	Sleeper     func(time.Duration)
	Logger      *slog.Logger
}

// Gateway retries a Backend with linear backoff and normalizes its output.
type Gateway struct {
	backend     Backend
	source      string
	target      string
	maxAttempts int
	backoffUnit time.Duration
	sleeper     func(time.Duration)
	logger      *slog.Logger

	failures int
}

// NewGateway constructs a Gateway for backend.
func NewGateway(backend Backend, opts Options) *Gateway {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	unit := opts.BackoffUnit
	if unit < 0 {
		unit = 0
	}
	return &Gateway{
		backend:     backend,
		source:      strings.TrimSpace(opts.Source),
		target:      strings.TrimSpace(opts.Target),
		maxAttempts: attempts,
		backoffUnit: unit,
		sleeper:     opts.Sleeper,
		logger:      logging.NewComponentLogger(logger, "translation"),
	}
}

// Backend returns the wrapped backend's name.
func (g *Gateway) Backend() string {
	if g == nil || g.backend == nil {
		return ""
	}
	return g.backend.Name()
}

// Source returns the source language code.
func (g *Gateway) Source() string { return g.source }

// Target returns the target language code.
func (g *Gateway) Target() string { return g.target }

// Failures reports how many texts exhausted every attempt.
func (g *Gateway) Failures() int { return g.failures }

// Translate sends text to the backend, retrying failed attempts. After the
// last failed attempt it logs the failure and returns "" with a nil error;
// only context cancellation is returned as an error.
func (g *Gateway) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if g.backend == nil {
		return "", errors.New("translation gateway: backend required")
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		translated, err := g.backend.Translate(ctx, text, g.source, g.target)
		if err == nil {
			return Normalize(translated), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		lastErr = err
		if attempt == g.maxAttempts {
			break
		}
		delay := time.Duration(attempt) * g.backoffUnit
		g.logger.Warn("translation attempt failed; retrying",
			logging.String(logging.FieldEventType, "translation_retry"),
			logging.String("backend", g.backend.Name()),
			logging.Int("attempt", attempt),
			logging.Int("max_attempts", g.maxAttempts),
			logging.Duration("retry_in", delay),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "transient backend errors usually clear on retry"),
			logging.String(logging.FieldImpact, "translation delayed"),
		)
		if err := g.sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	g.failures++
	logging.ErrorWithContext(g.logger, "translation failed; leaving sentence untranslated", "translation_failed",
		logging.String("backend", g.backend.Name()),
		logging.Int("attempts", g.maxAttempts),
		logging.Int("text_chars", len(text)),
		logging.Error(lastErr),
		logging.String(logging.FieldErrorHint, "check network access and backend credentials"),
		logging.String(logging.FieldImpact, "cues for this sentence will be blank"),
	)
	return "", nil
}

func (g *Gateway) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if g.sleeper != nil {
		g.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
