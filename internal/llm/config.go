package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures a backend. Provider is one of "anthropic",
// "openai", "gemini", "openrouter" or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries. Zero disables it.
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
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// discoveryOrder lists the vendor-standard key variables probed by
// DiscoverConfig, first match wins.
var discoveryOrder = []struct {
	env   string
	apply func(*Config, string)
}{
	{"GEMINI_API_KEY", func(c *Config, k string) { c.Provider, c.Gemini.APIKey = "gemini", k }},
	{"OPENAI_API_KEY", func(c *Config, k string) { c.Provider, c.OpenAI.APIKey = "openai", k }},
	{"ANTHROPIC_API_KEY", func(c *Config, k string) { c.Provider, c.Anthropic.APIKey = "anthropic", k }},
	{"OPENROUTER_API_KEY", func(c *Config, k string) { c.Provider, c.OpenRouter.APIKey = "openrouter", k }},
}

// DiscoverConfig picks a provider from the vendor-standard API key
// variables when none is configured explicitly.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoveryOrder {
		if k := os.Getenv(d.env); k != "" {
			cfg := DefaultConfig()
			d.apply(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate reports a missing key for the selected provider.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("no API key for the %s provider: set FRACTIZ_%s_API_KEY", c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}
