package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/pathwise-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/pathwise-backend/internal/adapter/provider/breaker"
	"github.com/heartmarshall/pathwise-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/pathwise-backend/internal/adapter/provider/stub"
	"github.com/heartmarshall/pathwise-backend/internal/config"
	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

type completionGateway interface {
	Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error)
}

// newGateway builds the configured completion provider behind a circuit breaker.
func newGateway(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*breaker.Breaker, error) {
	var next breaker.Gateway

	switch cfg.Provider {
	case config.ProviderAnthropic:
		var opts []option.RequestOption
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		next = anthropic.New(logger, cfg.APIKey, cfg.Model, opts...)
	case config.ProviderGemini:
		client, err := gemini.New(ctx, logger, cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		next = client
	case config.ProviderStub:
		logger.Warn("using stub completion provider, suggestions are canned")
		next = stub.New(false)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	return breaker.New(next, breaker.Config{
		Name:             cfg.Provider,
		FailureThreshold: cfg.BreakerFailureThreshold,
		OpenTimeout:      cfg.BreakerOpenTimeout,
	}, logger), nil
}
