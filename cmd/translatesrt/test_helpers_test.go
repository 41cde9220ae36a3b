package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"translatesrt/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	cachePath  string
	server     *httptest.Server
	calls      *atomic.Int32
}

type envOption func(*envSettings)

type envSettings struct {
	failing     bool
	maxAttempts int
	cache       bool
	policy      string
}

func withFailingBackend(attempts int) envOption {
	return func(s *envSettings) {
		s.failing = true
		s.maxAttempts = attempts
	}
}

func withCache() envOption {
	return func(s *envSettings) { s.cache = true }
}

func withPolicy(policy string) envOption {
	return func(s *envSettings) { s.policy = policy }
}

// setupCLITestEnv isolates HOME, starts a fake web translation endpoint that
// upper-cases its input, and points TRANSLATESRT_CONFIG at a config using it.
func setupCLITestEnv(t *testing.T, opts ...envOption) *cliTestEnv {
	t.Helper()

	settings := envSettings{maxAttempts: 5, policy: "group"}
	for _, opt := range opts {
		opt(&settings)
	}

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if settings.failing {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		q := r.PostForm.Get("q")
		payload := []any{[]any{[]any{strings.ToUpper(q), q}}, nil, r.URL.Query().Get("sl")}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		cachePath:  filepath.Join(base, "cache", "translations.db"),
		server:     server,
		calls:      &calls,
	}

	body := fmt.Sprintf(`[translation]
backend = "googleweb"
source_lang = "fi"
target_lang = "en"
max_attempts = %d
backoff_seconds = 0
mismatch_policy = %q

[googleweb]
base_url = %q

[cache]
enabled = %t
path = %q

[logging]
format = "json"
level = "info"
`, settings.maxAttempts, settings.policy, server.URL, settings.cache, env.cachePath)
	if err := os.WriteFile(env.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRANSLATESRT_CONFIG", env.configPath)
	return env
}

func (e *cliTestEnv) writeSRT(t *testing.T, name, body string) string {
	t.Helper()
	return testsupport.WriteSRT(t, e.baseDir, name, body)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}
