// Package anthropic is a completion gateway backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// Client sends prompts to Claude. Retries are left to the caller.
type Client struct {
	api   sdk.Client
	model string
	log   *slog.Logger
}

// New creates a Client. Extra options are applied after the API key.
func New(logger *slog.Logger, apiKey, model string, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &Client{
		api:   sdk.NewClient(append(base, opts...)...),
		model: model,
		log:   logger.With("adapter", "anthropic"),
	}
}

// Complete returns the concatenated text blocks of the model's reply.
func (c *Client) Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error) {
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   int64(params.MaxOutputTokens),
		Temperature: sdk.Float(params.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classify(ctx, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: anthropic: empty response", domain.ErrGateway)
	}

	c.log.DebugContext(ctx, "completion received",
		slog.String("model", c.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return b.String(), nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: anthropic: %w", domain.ErrGatewayTimeout, err)
	}
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: anthropic: status %d: %w", domain.ErrGateway, apiErr.StatusCode, err)
	}
	return fmt.Errorf("%w: anthropic: %w", domain.ErrGateway, err)
}
