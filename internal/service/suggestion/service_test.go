package suggestion

//go:generate moq -out completion_gateway_mock_test.go -pkg suggestion . completionGateway
//go:generate moq -out record_repo_mock_test.go -pkg suggestion . recordRepo
//go:generate moq -out quota_repo_mock_test.go -pkg suggestion . quotaRepo
//go:generate moq -out tx_manager_mock_test.go -pkg suggestion . txManager

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pathwise-backend/internal/adapter/memory"
	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/pkg/ctxutil"
)

var baseTime = time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)

const threeItemsJSON = `{"suggestions":[
	{"title":"Learn SQL window functions","reason":"You analyse data daily","action":"Finish one tutorial this week"},
	{"title":"Write integration tests","reason":"Regressions slow your team","action":"Cover one service with testcontainers"},
	{"title":"Mentor a junior","reason":"Teaching consolidates knowledge","action":"Offer a weekly pairing slot"}
]}`

const sampleBackground = "Backend developer with five years of Go and some Kubernetes"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClock is a settable clock shared by the service and the test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fixture wires a Service to the in-memory store and a mock gateway.
type fixture struct {
	svc   *Service
	store *memory.Store
	gw    *completionGatewayMock
	clock *testClock
}

func staticReply(raw string, err error) func(context.Context, string, domain.CompletionParams) (string, error) {
	return func(context.Context, string, domain.CompletionParams) (string, error) {
		return raw, err
	}
}

func newFixture(t *testing.T, reply func(context.Context, string, domain.CompletionParams) (string, error), opts ...func(*Config)) *fixture {
	t.Helper()

	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	store := memory.NewStore()
	gw := &completionGatewayMock{CompleteFunc: reply}
	svc, err := NewService(discardLogger(), cfg, gw, store, store, store)
	require.NoError(t, err)

	clock := &testClock{now: baseTime}
	svc.now = clock.Now

	return &fixture{svc: svc, store: store, gw: gw, clock: clock}
}

// newMockService wires a Service to mocks only.
func newMockService(t *testing.T, gw completionGateway, records recordRepo, quotas quotaRepo) *Service {
	t.Helper()

	svc, err := NewService(discardLogger(), DefaultConfig(), gw, records, quotas, &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	})
	require.NoError(t, err)
	svc.now = func() time.Time { return baseTime }
	return svc
}

func validInput() GenerateInput {
	goals := "Move into a staff engineer role"
	return GenerateInput{
		Background:      sampleBackground,
		Goals:           &goals,
		ExperienceLevel: "intermediate",
	}
}

func withUser(id uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), id)
}

func manyItemsJSON(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"title":"Item %d","reason":"Reason %d","action":"Action %d"}`, i, i, i)
	}
	return `{"suggestions":[` + strings.Join(parts, ",") + `]}`
}
