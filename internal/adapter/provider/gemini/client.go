// Package gemini is a completion gateway backed by the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// Client sends prompts to a Gemini model and asks for a JSON reply.
type Client struct {
	cli   *genai.Client
	model string
	log   *slog.Logger
}

// New creates a Client for the Gemini Developer API. baseURL overrides the
// API endpoint when non-empty.
func New(ctx context.Context, logger *slog.Logger, apiKey, model, baseURL string) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{cli: cli, model: model, log: logger.With("adapter", "gemini")}, nil
}

// Complete returns the text parts of the first candidate.
func (c *Client) Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error) {
	temperature := float32(params.Temperature)
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:      &temperature,
			MaxOutputTokens:  int32(params.MaxOutputTokens),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: gemini: %w", domain.ErrGatewayTimeout, err)
		}
		return "", fmt.Errorf("%w: gemini: %w", domain.ErrGateway, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: no candidates", domain.ErrGateway)
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: gemini: empty response", domain.ErrGateway)
	}

	c.log.DebugContext(ctx, "completion received", slog.String("model", c.model))
	return b.String(), nil
}
