// Command salind serves the registry's translation and language API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/TanglawLabs/salin"
	"github.com/TanglawLabs/salin/cache"
	"github.com/TanglawLabs/salin/config"
	"github.com/TanglawLabs/salin/pref"
	"github.com/TanglawLabs/salin/processor"
	"github.com/TanglawLabs/salin/provider"
	"github.com/TanglawLabs/salin/server"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", salin.Name).Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	backend, err := buildProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build translation provider")
	}

	wrapped := salin.NewRateLimitedProvider(
		salin.NewRetryableProvider(backend, salin.DefaultRetryConfig()),
		salin.RateLimitConfig{RequestsPerMinute: cfg.RequestsPerMinute},
	)

	translationCache, prefs, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to redis")
	}

	svc := salin.NewService(wrapped,
		salin.WithCache(translationCache),
		salin.WithLogger(log),
		salin.WithProcessor(processor.NewHTMLProcessor()),
	)

	gin.SetMode(gin.ReleaseMode)
	router := server.New(svc, prefs, log)

	log.Info().Str("addr", cfg.HTTPAddr).Str("provider", cfg.Provider).Msg("starting")
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// buildProvider picks the configured translation backend.
func buildProvider(cfg *config.Config) (salin.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
	default:
		return provider.NewGoogleProvider(provider.GoogleConfig{
			APIKey:    cfg.GoogleAPIKey,
			ProjectID: cfg.GoogleProjectID,
		})
	}
}

// buildStores wires the translation cache and the preference store, sharing
// one redis client when a redis URL is configured and falling back to
// in-memory implementations otherwise.
func buildStores(cfg *config.Config, log zerolog.Logger) (salin.TranslationCache, pref.Store, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("redis not configured, using in-memory cache and preference store")
		return cache.NewInMemoryCache(cfg.CacheTTLSeconds), pref.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	return cache.NewRedisCacheFromClient(client, cfg.CacheTTLSeconds, ""), pref.NewRedisStore(client), nil
}
