// Package config loads runtime configuration for the salin daemon from the
// environment, with SALIN_ prefixed variables taking precedence over the
// built-in defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/TanglawLabs/salin"
	"github.com/TanglawLabs/salin/cache"
)

// Provider backend names accepted in SALIN_PROVIDER.
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Config holds everything salind needs to start.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string `mapstructure:"http_addr"`

	// Provider selects the translation backend, "google" or "openai".
	Provider string `mapstructure:"provider"`

	// GoogleAPIKey authenticates against the Cloud Translation REST API.
	GoogleAPIKey string `mapstructure:"google_api_key"`

	// GoogleProjectID is the billing project sent as X-Goog-User-Project.
	// Optional.
	GoogleProjectID string `mapstructure:"google_project_id"`

	// OpenAIAPIKey authenticates against the OpenAI API when the openai
	// backend is selected.
	OpenAIAPIKey string `mapstructure:"openai_api_key"`

	// OpenAIModel overrides the chat model used for translation.
	OpenAIModel string `mapstructure:"openai_model"`

	// RedisURL, when set, enables the redis cache and preference store.
	// Empty means in-memory equivalents.
	RedisURL string `mapstructure:"redis_url"`

	// CacheTTLSeconds is how long translated text stays cached.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`

	// RequestsPerMinute throttles calls to the translation backend.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`

	// LogLevel is a zerolog level name, e.g. "debug" or "info".
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration from the environment and validates that the
// selected provider has its credentials.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SALIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("provider", ProviderGoogle)
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("cache_ttl_seconds", cache.DefaultTTLSeconds)
	v.SetDefault("requests_per_minute", 120)
	v.SetDefault("log_level", "info")

	// AutomaticEnv alone does not surface env vars through Unmarshal, so
	// bind each key explicitly.
	for _, key := range []string{
		"http_addr", "provider",
		"google_api_key", "google_project_id",
		"openai_api_key", "openai_model",
		"redis_url", "cache_ttl_seconds", "requests_per_minute", "log_level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, &salin.ConfigError{Message: "binding " + key + ": " + err.Error()}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &salin.ConfigError{Message: "parsing environment: " + err.Error()}
	}

	switch cfg.Provider {
	case ProviderGoogle:
		if cfg.GoogleAPIKey == "" {
			return nil, &salin.ConfigError{Message: "SALIN_GOOGLE_API_KEY is required for the google provider"}
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, &salin.ConfigError{Message: "SALIN_OPENAI_API_KEY is required for the openai provider"}
		}
	default:
		return nil, &salin.ConfigError{Message: "unknown provider " + cfg.Provider}
	}

	return &cfg, nil
}
