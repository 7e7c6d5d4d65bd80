package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	"github.com/fitr-app/fitr-backend/internal/infra/config"
	"github.com/fitr-app/fitr-backend/internal/infra/llm/chatgpt"
	"github.com/fitr-app/fitr-backend/internal/infra/oracle"
	"github.com/fitr-app/fitr-backend/internal/infra/outfitcache"
	"github.com/fitr-app/fitr-backend/internal/infra/outfitrepo"
	"github.com/fitr-app/fitr-backend/internal/infra/wardroberepo"
	"github.com/fitr-app/fitr-backend/internal/infra/weather/openweather"
)

func provideOutfitConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{
		HighWindThreshold: cfg.Recommendation.HighWindThreshold,
	}
}

func provideOracleConfig(cfg *config.Config) oracle.Config {
	return oracle.Config{
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		Prompt:          cfg.Oracle.Prompt,
		MaxPromptTokens: cfg.Oracle.MaxPromptTokens,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideWeatherProvider(cfg *config.Config) weather.Provider {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
}

func provideWardrobeRepository(cfg *config.Config, logger *slog.Logger) wardrobe.Repository {
	pool, ok := providePostgresPool(cfg, logger, "wardrobe")
	if !ok {
		return wardroberepo.NewMemoryRepository()
	}
	return wardroberepo.NewPostgresRepository(pool)
}

func provideOutfitHistory(cfg *config.Config, logger *slog.Logger) outfit.History {
	pool, ok := providePostgresPool(cfg, logger, "outfit history")
	if !ok {
		return outfitrepo.NewMemoryRepository()
	}
	return outfitrepo.NewPostgresRepository(pool)
}

func providePostgresPool(cfg *config.Config, logger *slog.Logger, purpose string) (*pgxpool.Pool, bool) {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository", "purpose", purpose)
		return nil, false
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "purpose", purpose, "error", err)
		return nil, false
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "purpose", purpose, "error", err)
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "purpose", purpose, "error", err)
		pool.Close()
		return nil, false
	}
	logger.Info("postgres repository enabled", "purpose", purpose)
	return pool, true
}

func provideOutfitCache(cfg *config.Config, logger *slog.Logger) outfit.Cache {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return outfitcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return outfitcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey recommendation cache enabled", "addr", cfg.Cache.Addr)
			return outfitcache.NewValkeyStore(client, "outfit")
		}
	}
	return outfitcache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
