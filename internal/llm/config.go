package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures the backend used for lesson generation.
type Config struct {
	// Provider is one of "gemini", "anthropic", "openai", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig is the backoff policy for transient failures. MaxAttempts
// of 1 means no retry; the learner retries by resubmitting the setup form.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// modelAliases maps short names accepted in configuration to model IDs.
// Names without an alias are used verbatim.
var modelAliases = map[string]map[string]string{
	"anthropic": {
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-5-20250929",
	},
	"gemini": {
		"gemini-flash": "gemini-3-flash-preview",
		"gemini-lite":  "gemini-2.5-flash-lite",
		"gemini-pro":   "gemini-2.5-pro",
	},
	"openai": {
		"gpt":      "gpt-4o",
		"gpt-mini": "gpt-4o-mini",
	},
}

func resolveModel(provider, name string) string {
	if id, ok := modelAliases[provider][name]; ok {
		return id
	}
	return name
}

// DefaultConfig uses Gemini with a single attempt and a 60s budget.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// apiKey returns the key slot for provider, or nil for providers that
// take no key.
func (c *Config) apiKey(provider string) *string {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "gemini":
		return &c.Gemini.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

// ConfigFromEnv overlays LINGUIST_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	strs := []struct {
		env string
		dst *string
	}{
		{"LINGUIST_LLM_PROVIDER", &cfg.Provider},
		{"LINGUIST_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"LINGUIST_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"LINGUIST_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"LINGUIST_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"LINGUIST_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"LINGUIST_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"LINGUIST_GEMINI_MODEL", &cfg.Gemini.Model},
		{"LINGUIST_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"LINGUIST_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	if n, err := strconv.Atoi(os.Getenv("LINGUIST_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("LINGUIST_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// standardKeys are the conventional key variables in discovery order. A
// bare API_KEY is a Gemini key.
var standardKeys = []struct{ env, provider string }{
	{"API_KEY", "gemini"},
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DiscoverConfig picks the provider of the first standard key variable
// that is set.
func DiscoverConfig() (Config, bool) {
	for _, k := range standardKeys {
		v := os.Getenv(k.env)
		if v == "" {
			continue
		}
		cfg := ConfigFromEnv()
		cfg.Provider = k.provider
		*cfg.apiKey(k.provider) = v
		return cfg, true
	}
	return Config{}, false
}

// ResolveConfig prefers a complete LINGUIST_* configuration and falls back
// to DiscoverConfig.
func ResolveConfig() (Config, error) {
	if cfg := ConfigFromEnv(); cfg.Validate() == nil {
		return cfg, nil
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	return Config{}, ErrNoCredentials
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key := c.apiKey(c.Provider)
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("%s provider: %w", c.Provider, ErrNoCredentials)
	}
	return nil
}
