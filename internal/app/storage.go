package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pathwise-backend/internal/adapter/memory"
	"github.com/heartmarshall/pathwise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pathwise-backend/internal/adapter/postgres/quota"
	suggestionrepo "github.com/heartmarshall/pathwise-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/pathwise-backend/internal/config"
	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/internal/service/suggestion"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is the opened record and quota store for the configured driver.
type storage struct {
	pinger     pinger
	newService func(logger *slog.Logger, cfg suggestion.Config, gateway completionGateway) (*suggestion.Service, error)
	close      func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{
			pinger: store,
			newService: func(logger *slog.Logger, scfg suggestion.Config, gateway completionGateway) (*suggestion.Service, error) {
				return suggestion.NewService(logger, scfg, gateway, store, store, store)
			},
			close: func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.AutoMigrate {
			if err := postgres.MigrateUp(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}

		records := suggestionrepo.New(pool)
		quotas := quota.New(pool)
		txm := postgres.NewTxManager(pool)
		return &storage{
			pinger: pool,
			newService: func(logger *slog.Logger, scfg suggestion.Config, gateway completionGateway) (*suggestion.Service, error) {
				return suggestion.NewService(logger, scfg, gateway, records, quotas, txm)
			},
			close: pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

func serviceConfig(cfg *config.Config) suggestion.Config {
	return suggestion.Config{
		RateWindow:        cfg.Suggestion.RateWindow,
		CachePrefixLength: cfg.Suggestion.CachePrefixLength,
		CacheSize:         cfg.Suggestion.CacheSize,
		CacheShared:       cfg.Suggestion.CacheShared,
		GatewayTimeout:    cfg.LLM.Timeout,
		Completion: domain.CompletionParams{
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		},
	}
}
