package config

import (
	"fmt"
	"os"
	"strings"

	"translatesrt/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeTranslation()
	c.normalizeGoogleWeb()
	c.normalizeOpenRouter()
	c.normalizeOpenAI()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTranslation() {
	t := &c.Translation
	t.Backend = strings.ToLower(strings.TrimSpace(t.Backend))
	if t.Backend == "" {
		t.Backend = defaultBackend
	}
	t.SourceLang = strings.TrimSpace(t.SourceLang)
	if t.SourceLang == "" {
		t.SourceLang = defaultSourceLang
	}
	t.TargetLang = strings.TrimSpace(t.TargetLang)
	if t.TargetLang == "" {
		t.TargetLang = defaultTargetLang
	}
	// Unparseable codes are left as written so Validate can report them.
	if code, err := language.Normalize(t.SourceLang); err == nil {
		t.SourceLang = code
	}
	if code, err := language.Normalize(t.TargetLang); err == nil {
		t.TargetLang = code
	}
	if t.MaxAttempts == 0 {
		t.MaxAttempts = defaultMaxAttempts
	}
	t.MismatchPolicy = strings.ToLower(strings.TrimSpace(t.MismatchPolicy))
	if t.MismatchPolicy == "" {
		t.MismatchPolicy = defaultMismatchPolicy
	}
}

func (c *Config) normalizeGoogleWeb() {
	c.GoogleWeb.BaseURL = strings.TrimSpace(c.GoogleWeb.BaseURL)
	if c.GoogleWeb.BaseURL == "" {
		c.GoogleWeb.BaseURL = defaultGoogleWebBaseURL
	}
	if c.GoogleWeb.TimeoutSeconds <= 0 {
		c.GoogleWeb.TimeoutSeconds = defaultGoogleWebTimeout
	}
}

func (c *Config) normalizeOpenRouter() {
	or := &c.OpenRouter
	or.APIKey = strings.TrimSpace(or.APIKey)
	if or.APIKey == "" {
		if value, ok := os.LookupEnv(openRouterAPIKeyEnv); ok {
			or.APIKey = strings.TrimSpace(value)
		}
	}
	or.BaseURL = strings.TrimSpace(or.BaseURL)
	if or.BaseURL == "" {
		or.BaseURL = defaultOpenRouterBaseURL
	}
	or.Model = strings.TrimSpace(or.Model)
	if or.Model == "" {
		or.Model = defaultOpenRouterModel
	}
	or.Referer = strings.TrimSpace(or.Referer)
	or.Title = strings.TrimSpace(or.Title)
	if or.TimeoutSeconds <= 0 {
		or.TimeoutSeconds = defaultOpenRouterTimeout
	}
}

func (c *Config) normalizeOpenAI() {
	oa := &c.OpenAI
	oa.APIKey = strings.TrimSpace(oa.APIKey)
	if oa.APIKey == "" {
		if value, ok := os.LookupEnv(openAIAPIKeyEnv); ok {
			oa.APIKey = strings.TrimSpace(value)
		}
	}
	oa.BaseURL = strings.TrimSpace(oa.BaseURL)
	if oa.BaseURL == "" {
		oa.BaseURL = defaultOpenAIBaseURL
	}
	oa.Model = strings.TrimSpace(oa.Model)
	if oa.Model == "" {
		oa.Model = defaultOpenAIModel
	}
	if oa.TimeoutSeconds <= 0 {
		oa.TimeoutSeconds = defaultOpenAITimeout
	}
}

func (c *Config) normalizeCache() error {
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	var err error
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
