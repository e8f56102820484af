package stub

import (
	"context"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

const cannedResponse = `{"suggestions":[` +
	`{"title":"Build a small project","reason":"Hands-on work turns reading into skill","action":"Ship a weekend project that uses one new tool"},` +
	`{"title":"Read production code","reason":"Real codebases show patterns tutorials skip","action":"Study one open-source repository in your stack for an hour"},` +
	`{"title":"Share what you learn","reason":"Explaining a topic exposes gaps","action":"Write a short post about something you learned this week"}` +
	`]}`

// Gateway is a completion gateway for local development. It never calls a
// model and always answers with the same suggestions.
type Gateway struct {
	fenced bool
}

// New creates a Gateway. With fenced set the answer is wrapped in a
// markdown code fence the way chat models often reply.
func New(fenced bool) *Gateway { return &Gateway{fenced: fenced} }

// Complete returns the canned answer, or the context error if ctx is done.
func (g *Gateway) Complete(ctx context.Context, _ string, _ domain.CompletionParams) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.fenced {
		return "Here are your suggestions:\n```json\n" + cannedResponse + "\n```", nil
	}
	return cannedResponse, nil
}
