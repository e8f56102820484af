// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate status   list migrations and whether they are applied
//
// Reads the database settings the same way the server does.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/pathwise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pathwise-backend/internal/app"
	"github.com/heartmarshall/pathwise-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(1)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("migrate needs the postgres driver, got %q", cfg.Database.Driver)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := run(ctx, command, pool, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, pool *pgxpool.Pool, logger *slog.Logger) error {
	switch command {
	case "up":
		return postgres.MigrateUp(ctx, pool, logger)
	case "down", "status":
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	if command == "down" {
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("migration rolled back",
			slog.Int64("version", res.Source.Version),
			slog.String("source", res.Source.Path),
			slog.Duration("duration", res.Duration),
		)
		return nil
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	for _, st := range statuses {
		attrs := []any{
			slog.Int64("version", st.Source.Version),
			slog.String("source", st.Source.Path),
			slog.String("state", string(st.State)),
		}
		if !st.AppliedAt.IsZero() {
			attrs = append(attrs, slog.Time("applied_at", st.AppliedAt))
		}
		logger.Info("migration", attrs...)
	}
	return nil
}
