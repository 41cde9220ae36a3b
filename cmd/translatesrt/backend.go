package main

import (
	"fmt"

	"translatesrt/internal/config"
	"translatesrt/internal/translation"
	"translatesrt/internal/translation/googleweb"
	"translatesrt/internal/translation/openai"
	"translatesrt/internal/translation/openrouter"
)

func newBackend(cfg *config.Config) (translation.Backend, error) {
	switch cfg.Translation.Backend {
	case config.BackendGoogleWeb:
		return googleweb.NewClient(googleweb.Config{
			BaseURL:        cfg.GoogleWeb.BaseURL,
			TimeoutSeconds: cfg.GoogleWeb.TimeoutSeconds,
		}), nil
	case config.BackendOpenRouter:
		return openrouter.NewClient(openrouter.Config{
			APIKey:         cfg.OpenRouter.APIKey,
			BaseURL:        cfg.OpenRouter.BaseURL,
			Model:          cfg.OpenRouter.Model,
			Referer:        cfg.OpenRouter.Referer,
			Title:          cfg.OpenRouter.Title,
			TimeoutSeconds: cfg.OpenRouter.TimeoutSeconds,
		}), nil
	case config.BackendOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:         cfg.OpenAI.APIKey,
			BaseURL:        cfg.OpenAI.BaseURL,
			Model:          cfg.OpenAI.Model,
			TimeoutSeconds: cfg.OpenAI.TimeoutSeconds,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported translation backend %q", cfg.Translation.Backend)
	}
}
