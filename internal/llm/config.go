package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend. Empty means no provider.
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// ProviderConfig holds the credentials and model for one backend. BaseURL
// only applies to the OpenAI-compatible backends.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Selected returns the configuration of the chosen provider.
func (c Config) Selected() ProviderConfig {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderGemini:
		return c.Gemini
	case ProviderOpenRouter:
		return c.OpenRouter
	}
	return ProviderConfig{}
}

// DefaultConfig returns a Config with default models and no provider.
func DefaultConfig() Config {
	return Config{
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// envKeys lists, per provider, the BIOFIT_ variable and the vendor's own
// variable for the API key, in lookup order.
var envKeys = []struct {
	provider string
	vars     [2]string
}{
	{ProviderAnthropic, [2]string{"BIOFIT_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"}},
	{ProviderOpenAI, [2]string{"BIOFIT_OPENAI_API_KEY", "OPENAI_API_KEY"}},
	{ProviderGemini, [2]string{"BIOFIT_GEMINI_API_KEY", "GEMINI_API_KEY"}},
	{ProviderOpenRouter, [2]string{"BIOFIT_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"}},
}

// ConfigFromEnv builds a Config from environment variables read through
// getenv (os.Getenv when nil). Without BIOFIT_LLM_PROVIDER the first
// provider with an API key is chosen.
func ConfigFromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()

	slots := map[string]*ProviderConfig{
		ProviderAnthropic:  &cfg.Anthropic,
		ProviderOpenAI:     &cfg.OpenAI,
		ProviderGemini:     &cfg.Gemini,
		ProviderOpenRouter: &cfg.OpenRouter,
	}
	prefix := map[string]string{
		ProviderAnthropic:  "BIOFIT_ANTHROPIC_",
		ProviderOpenAI:     "BIOFIT_OPENAI_",
		ProviderGemini:     "BIOFIT_GEMINI_",
		ProviderOpenRouter: "BIOFIT_OPENROUTER_",
	}

	for _, k := range envKeys {
		slot := slots[k.provider]
		for _, v := range k.vars {
			if key := getenv(v); key != "" {
				slot.APIKey = key
				break
			}
		}
		if m := getenv(prefix[k.provider] + "MODEL"); m != "" {
			slot.Model = m
		}
		if u := getenv(prefix[k.provider] + "BASE_URL"); u != "" {
			slot.BaseURL = u
		}
		if cfg.Provider == "" && slot.APIKey != "" {
			cfg.Provider = k.provider
		}
	}

	if p := getenv("BIOFIT_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if t := getenv("BIOFIT_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}
	if n := getenv("BIOFIT_LLM_MAX_ATTEMPTS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			cfg.Retry.MaxAttempts = v
		}
	}
	return cfg
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return ErrNotConfigured
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.Selected().APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
