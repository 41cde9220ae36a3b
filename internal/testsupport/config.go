package testsupport

import (
	"path/filepath"
	"testing"

	"translatesrt/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique cache path per test.
// Backoff is disabled so retry paths run without waiting.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Translation.BackoffSeconds = 0
	cfgVal.Cache.Path = filepath.Join(base, "cache", "translations.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithBackend selects the translation backend and points it at baseURL.
// Key-based backends receive a placeholder API key.
func WithBackend(name, baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Translation.Backend = name
		switch name {
		case config.BackendGoogleWeb:
			b.cfg.GoogleWeb.BaseURL = baseURL
		case config.BackendOpenRouter:
			b.cfg.OpenRouter.BaseURL = baseURL
			b.cfg.OpenRouter.APIKey = "test"
		case config.BackendOpenAI:
			b.cfg.OpenAI.BaseURL = baseURL
			b.cfg.OpenAI.APIKey = "test"
		}
	}
}

// WithLanguages overrides the source and target languages.
func WithLanguages(source, target string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Translation.SourceLang = source
		b.cfg.Translation.TargetLang = target
	}
}

// WithCache toggles the translation cache.
func WithCache(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Enabled = enabled
	}
}
