package config

const (
	BackendGoogleWeb  = "googleweb"
	BackendOpenRouter = "openrouter"
	BackendOpenAI     = "openai"

	PolicyGroup    = "group"
	PolicyTruncate = "truncate"
)

const (
	defaultConfigPath        = "~/.config/translatesrt/config.toml"
	defaultProjectConfigName = "translatesrt.toml"
	defaultBackend           = BackendGoogleWeb
	defaultSourceLang        = "fi"
	defaultTargetLang        = "en"
	defaultMaxAttempts       = 5
	defaultBackoffSeconds    = 60
	defaultMismatchPolicy    = PolicyGroup
	defaultGoogleWebBaseURL  = "https://translate.googleapis.com/translate_a/single"
	defaultGoogleWebTimeout  = 30
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel   = "google/gemini-3-flash-preview"
	defaultOpenRouterReferer = "https://github.com/translatesrt/translatesrt"
	defaultOpenRouterTitle   = "translatesrt"
	defaultOpenRouterTimeout = 60
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultOpenAIModel       = "gpt-4o-mini"
	defaultOpenAITimeout     = 60
	defaultCachePath         = "~/.cache/translatesrt/translations.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	configPathEnv            = "TRANSLATESRT_CONFIG"
	openRouterAPIKeyEnv      = "OPENROUTER_API_KEY"
	openAIAPIKeyEnv          = "OPENAI_API_KEY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Translation: Translation{
			Backend:        defaultBackend,
			SourceLang:     defaultSourceLang,
			TargetLang:     defaultTargetLang,
			MaxAttempts:    defaultMaxAttempts,
			BackoffSeconds: defaultBackoffSeconds,
			MismatchPolicy: defaultMismatchPolicy,
		},
		GoogleWeb: GoogleWeb{
			BaseURL:        defaultGoogleWebBaseURL,
			TimeoutSeconds: defaultGoogleWebTimeout,
		},
		OpenRouter: OpenRouter{
			BaseURL:        defaultOpenRouterBaseURL,
			Model:          defaultOpenRouterModel,
			Referer:        defaultOpenRouterReferer,
			Title:          defaultOpenRouterTitle,
			TimeoutSeconds: defaultOpenRouterTimeout,
		},
		OpenAI: OpenAI{
			BaseURL:        defaultOpenAIBaseURL,
			Model:          defaultOpenAIModel,
			TimeoutSeconds: defaultOpenAITimeout,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
