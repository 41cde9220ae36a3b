package config

import (
	"errors"
	"fmt"
	"strings"

	"translatesrt/internal/language"
	"translatesrt/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranslation(); err != nil {
		return err
	}
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranslation() error {
	t := c.Translation
	if _, err := language.Normalize(t.SourceLang); err != nil {
		return fmt.Errorf("translation.source_lang %q: %w", t.SourceLang, err)
	}
	if _, err := language.Normalize(t.TargetLang); err != nil {
		return fmt.Errorf("translation.target_lang %q: %w", t.TargetLang, err)
	}
	if t.SourceLang == t.TargetLang {
		return fmt.Errorf("translation.source_lang and translation.target_lang are both %q", t.SourceLang)
	}
	if t.MaxAttempts < 1 {
		return errors.New("translation.max_attempts must be at least 1")
	}
	if t.BackoffSeconds < 0 {
		return errors.New("translation.backoff_seconds must be non-negative")
	}
	switch t.MismatchPolicy {
	case PolicyGroup, PolicyTruncate:
	default:
		return fmt.Errorf("translation.mismatch_policy must be %q or %q, got %q", PolicyGroup, PolicyTruncate, t.MismatchPolicy)
	}
	return nil
}

func (c *Config) validateBackend() error {
	switch c.Translation.Backend {
	case BackendGoogleWeb:
		return nil
	case BackendOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return c.missingKeyError("openrouter.api_key", openRouterAPIKeyEnv)
		}
		return nil
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return c.missingKeyError("openai.api_key", openAIAPIKeyEnv)
		}
		return nil
	default:
		return fmt.Errorf("translation.backend must be one of %s, got %q",
			strings.Join([]string{BackendGoogleWeb, BackendOpenRouter, BackendOpenAI}, ", "), c.Translation.Backend)
	}
}

func (c *Config) missingKeyError(field, env string) error {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = defaultConfigPath
	}
	return fmt.Errorf("%s is required for backend %q. Set %s env var or edit %s (create with 'translatesrt config init')",
		field, c.Translation.Backend, env, defaultPath)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
