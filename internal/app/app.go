package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/pathwise-backend/internal/auth"
	"github.com/heartmarshall/pathwise-backend/internal/config"
	"github.com/heartmarshall/pathwise-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, opens the
// store, builds the completion gateway and the suggestion service, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	st, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.close()

	gateway, err := newGateway(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}

	svc, err := st.newService(logger, serviceConfig(cfg), gateway)
	if err != nil {
		return fmt.Errorf("create suggestion service: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var limiter *middleware.RateLimiter
	if cfg.HTTPLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.HTTPLimit.RequestsPerMinute, cfg.HTTPLimit.Burst, idleCleanupInterval)
		defer limiter.Stop()
	}

	handler := NewHTTPHandler(HTTPDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		Service:   svc,
		Store:     st.pinger,
		Gateway:   gateway,
		Validator: jwtManager,
		Limiter:   limiter,
		Version:   BuildVersion(),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
