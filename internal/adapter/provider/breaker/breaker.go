// Package breaker wraps a completion gateway in a circuit breaker so a
// failing upstream is skipped quickly instead of costing a full timeout on
// every request.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// Gateway is the wrapped completion capability.
type Gateway interface {
	Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error)
}

// Config controls when the breaker opens and for how long.
type Config struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
	// HalfOpenRequests is the number of trial calls allowed while half-open.
	HalfOpenRequests uint32
}

// Breaker is a Gateway guarded by a circuit breaker.
type Breaker struct {
	next Gateway
	cb   *gobreaker.CircuitBreaker[string]
}

// New wraps next.
func New(next Gateway, cfg Config, logger *slog.Logger) *Breaker {
	log := logger.With("adapter", "breaker")
	if cfg.HalfOpenRequests == 0 {
		cfg.HalfOpenRequests = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// A caller giving up is not an upstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			level := slog.LevelInfo
			if to == gobreaker.StateOpen {
				level = slog.LevelWarn
			}
			log.Log(context.Background(), level, "circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker[string](settings)}
}

// Complete calls the wrapped gateway unless the breaker is open. Rejections
// wrap domain.ErrGateway.
func (b *Breaker) Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error) {
	out, err := b.cb.Execute(func() (string, error) {
		return b.next.Complete(ctx, prompt, params)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", domain.ErrGateway, err)
	}
	return out, err
}

// State reports the breaker state for health checks.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
