package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"translatesrt/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRANSLATESRT_CONFIG", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false when no config file present")
	}
	wantPath := filepath.Join(home, ".config", "translatesrt", "config.toml")
	if resolved != wantPath {
		t.Fatalf("resolved = %q, want %q", resolved, wantPath)
	}
	if cfg.Translation.Backend != config.BackendGoogleWeb {
		t.Fatalf("backend = %q, want googleweb", cfg.Translation.Backend)
	}
	if cfg.Translation.SourceLang != "fi" || cfg.Translation.TargetLang != "en" {
		t.Fatalf("languages = %s->%s, want fi->en", cfg.Translation.SourceLang, cfg.Translation.TargetLang)
	}
	if cfg.Translation.MaxAttempts != 5 {
		t.Fatalf("max attempts = %d, want 5", cfg.Translation.MaxAttempts)
	}
	if cfg.Backoff() != 60*time.Second {
		t.Fatalf("backoff = %s, want 60s", cfg.Backoff())
	}
	if cfg.Translation.MismatchPolicy != config.PolicyGroup {
		t.Fatalf("policy = %q, want group", cfg.Translation.MismatchPolicy)
	}
	wantCache := filepath.Join(home, ".cache", "translatesrt", "translations.db")
	if cfg.Cache.Path != wantCache {
		t.Fatalf("cache path = %q, want %q", cfg.Cache.Path, wantCache)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
}

func TestLoadCustomConfig(t *testing.T) {
	home := isolate(t)

	payload := map[string]any{
		"translation": map[string]any{
			"backend":         "openrouter",
			"source_lang":     "sv",
			"target_lang":     "de",
			"max_attempts":    3,
			"backoff_seconds": 2,
			"mismatch_policy": "truncate",
		},
		"openrouter": map[string]any{
			"api_key": "  or-key  ",
			"model":   "some/model",
		},
		"cache": map[string]any{
			"enabled": false,
			"path":    "~/memo.db",
		},
		"logging": map[string]any{
			"format": "JSON",
			"level":  "Debug",
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v, want %q true", resolved, exists, path)
	}
	if cfg.Translation.Backend != config.BackendOpenRouter {
		t.Fatalf("backend = %q", cfg.Translation.Backend)
	}
	if cfg.OpenRouter.APIKey != "or-key" {
		t.Fatalf("api key = %q, want trimmed", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "some/model" {
		t.Fatalf("model = %q", cfg.OpenRouter.Model)
	}
	if cfg.Translation.MaxAttempts != 3 || cfg.Backoff() != 2*time.Second {
		t.Fatalf("retry = %d/%s", cfg.Translation.MaxAttempts, cfg.Backoff())
	}
	if cfg.Translation.MismatchPolicy != config.PolicyTruncate {
		t.Fatalf("policy = %q", cfg.Translation.MismatchPolicy)
	}
	if cfg.Cache.Enabled {
		t.Fatal("expected cache disabled")
	}
	if cfg.Cache.Path != filepath.Join(home, "memo.db") {
		t.Fatalf("cache path = %q", cfg.Cache.Path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadUsesEnvironmentOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.toml")
	body := "[translation]\nbackend = \"openai\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRANSLATESRT_CONFIG", path)
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v", resolved, exists)
	}
	if cfg.OpenAI.APIKey != "env-key" {
		t.Fatalf("api key = %q, want env-key", cfg.OpenAI.APIKey)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	isolate(t)
	body := "[translation]\ntarget_lang = \"fr\"\n"
	if err := os.WriteFile("translatesrt.toml", []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "translatesrt.toml" {
		t.Fatalf("resolved = %q exists=%v", resolved, exists)
	}
	if cfg.Translation.TargetLang != "fr" {
		t.Fatalf("target = %q, want fr", cfg.Translation.TargetLang)
	}
}

func TestLoadNormalizesLanguageNames(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[translation]\nsource_lang = \"Finnish\"\ntarget_lang = \"eng\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Translation.SourceLang != "fi" || cfg.Translation.TargetLang != "en" {
		t.Fatalf("languages = %s->%s, want fi->en", cfg.Translation.SourceLang, cfg.Translation.TargetLang)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown backend", "[translation]\nbackend = \"babelfish\"\n", "translation.backend"},
		{"bad language", "[translation]\nsource_lang = \"not a tag\"\n", "translation.source_lang"},
		{"same languages", "[translation]\nsource_lang = \"en\"\ntarget_lang = \"english\"\n", "translation.target_lang"},
		{"zero attempts", "[translation]\nmax_attempts = -1\n", "max_attempts"},
		{"negative backoff", "[translation]\nbackoff_seconds = -5\n", "backoff_seconds"},
		{"bad policy", "[translation]\nmismatch_policy = \"pad\"\n", "mismatch_policy"},
		{"missing openrouter key", "[translation]\nbackend = \"openrouter\"\n", "OPENROUTER_API_KEY"},
		{"missing openai key", "[translation]\nbackend = \"openai\"\n", "OPENAI_API_KEY"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown field", "[translation]\nspeed = 3\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Translation.Backend != config.BackendGoogleWeb {
		t.Fatalf("sample backend = %q", cfg.Translation.Backend)
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	got, err := config.ExpandPath("~/subs/out.srt")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "subs", "out.srt") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
