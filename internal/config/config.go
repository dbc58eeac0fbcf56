// Package config loads application settings from a YAML file, a .env file
// and FRACTIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/llm"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FRACTIZ"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string        `mapstructure:"env"` // production or development
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	LLM     LLMConfig     `mapstructure:"llm"`
}

// LogConfig controls the rotated log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`        // debug, info, warn, error
	File       string `mapstructure:"file"`         // empty means DefaultLogPath
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // rotate after this size
	MaxBackups int    `mapstructure:"max_backups"`  // rotated files kept
	MaxAgeDays int    `mapstructure:"max_age_days"` // rotated files older than this are removed
}

// GameConfig mirrors game.Config.
type GameConfig struct {
	MaxQuestions     int           `mapstructure:"max_questions"`
	WorkingSize      int           `mapstructure:"working_size"`
	PointsPerCorrect int           `mapstructure:"points_per_correct"`
	HintedPoints     int           `mapstructure:"hinted_points"`
	HintDelay        time.Duration `mapstructure:"hint_delay"`
	FeedbackDelay    time.Duration `mapstructure:"feedback_delay"`
	GoodJobScore     int           `mapstructure:"good_job_score"`
}

// AudioConfig toggles the terminal bell.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CatalogConfig selects the question catalog.
type CatalogConfig struct {
	File string `mapstructure:"file"` // YAML catalog replacing the built-in one
}

// LLMConfig selects the provider used by the draft command.
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`

	AnthropicAPIKey  string `mapstructure:"-"`
	OpenAIAPIKey     string `mapstructure:"-"`
	GeminiAPIKey     string `mapstructure:"-"`
	OpenRouterAPIKey string `mapstructure:"-"`
}

// Load reads configuration. path may be empty, in which case fractiz.yaml
// is searched for in the working directory and the user config directory.
// A missing search-path file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fractiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("anthropic_api_key", EnvPrefix+"_ANTHROPIC_API_KEY")
	_ = v.BindEnv("openai_api_key", EnvPrefix+"_OPENAI_API_KEY")
	_ = v.BindEnv("gemini_api_key", EnvPrefix+"_GEMINI_API_KEY")
	_ = v.BindEnv("openrouter_api_key", EnvPrefix+"_OPENROUTER_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.LLM.AnthropicAPIKey = v.GetString("anthropic_api_key")
	cfg.LLM.OpenAIAPIKey = v.GetString("openai_api_key")
	cfg.LLM.GeminiAPIKey = v.GetString("gemini_api_key")
	cfg.LLM.OpenRouterAPIKey = v.GetString("openrouter_api_key")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := game.DefaultConfig()

	v.SetDefault("env", "production")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("game.max_questions", d.MaxQuestions)
	v.SetDefault("game.working_size", d.WorkingSize)
	v.SetDefault("game.points_per_correct", d.PointsPerCorrect)
	v.SetDefault("game.hinted_points", d.HintedPoints)
	v.SetDefault("game.hint_delay", d.HintDelay.String())
	v.SetDefault("game.feedback_delay", d.FeedbackDelay.String())
	v.SetDefault("game.good_job_score", d.GoodJobScore)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("catalog.file", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", "30s")
}

// Development reports whether the development environment is selected.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Rules converts the game section into game.Config.
func (g GameConfig) Rules() game.Config {
	return game.Config{
		MaxQuestions:     g.MaxQuestions,
		WorkingSize:      g.WorkingSize,
		PointsPerCorrect: g.PointsPerCorrect,
		HintedPoints:     g.HintedPoints,
		HintDelay:        g.HintDelay,
		FeedbackDelay:    g.FeedbackDelay,
		GoodJobScore:     g.GoodJobScore,
	}
}

// Resolve builds an llm.Config. With no provider configured it falls back
// to llm.DiscoverConfig, and reports false if that finds nothing either.
func (l LLMConfig) Resolve() (llm.Config, bool) {
	if l.Provider == "" {
		cfg, ok := llm.DiscoverConfig()
		if ok && l.Timeout > 0 {
			cfg.Timeout = l.Timeout
		}
		return cfg, ok
	}

	cfg := llm.DefaultConfig()
	cfg.Provider = l.Provider
	if l.Timeout > 0 {
		cfg.Timeout = l.Timeout
	}
	cfg.Anthropic.APIKey = l.AnthropicAPIKey
	cfg.OpenAI.APIKey = l.OpenAIAPIKey
	cfg.Gemini.APIKey = l.GeminiAPIKey
	cfg.OpenRouter.APIKey = l.OpenRouterAPIKey

	if l.Model != "" {
		switch l.Provider {
		case "anthropic":
			cfg.Anthropic.Model = l.Model
		case "openai":
			cfg.OpenAI.Model = l.Model
		case "gemini":
			cfg.Gemini.Model = l.Model
		case "openrouter":
			cfg.OpenRouter.Model = l.Model
		}
	}
	return cfg, true
}

// configDir returns $XDG_CONFIG_HOME/fractiz, defaulting to ~/.config/fractiz.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "fractiz"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/fractiz/fractiz.log, defaulting
// to ~/.local/state, and creates its directory.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "fractiz", "fractiz.log")
	return p, os.MkdirAll(filepath.Dir(p), 0o755)
}
