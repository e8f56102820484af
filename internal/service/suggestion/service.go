package suggestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

type completionGateway interface {
	Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error)
}

type recordRepo interface {
	Insert(ctx context.Context, rec *domain.SuggestionRecord) (uuid.UUID, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error)
	// LockByID is GetByID holding a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.SuggestionRecordPatch) (*domain.SuggestionRecord, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.SuggestionRecord, int, error)
	FindLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.SuggestionRecord, error)
	// FindBySimilarInput returns the newest record with the given level and
	// background prefix. A nil ownerID searches across all owners.
	FindBySimilarInput(ctx context.Context, ownerID *uuid.UUID, level domain.ExperienceLevel, prefix string) (*domain.SuggestionRecord, error)
	RecordCacheReuse(ctx context.Context, id uuid.UUID, at time.Time) error
}

type quotaRepo interface {
	// Reserve atomically starts a new window for ownerID if the previous one
	// started at or before now-window. ok=false means the window is still
	// open; the returned state then holds its start.
	Reserve(ctx context.Context, ownerID uuid.UUID, now time.Time, window time.Duration) (state domain.RateWindow, ok bool, err error)
	// Release undoes a reservation made at windowStart. It is a no-op if the
	// window has moved on since.
	Release(ctx context.Context, ownerID uuid.UUID, windowStart time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the tunables of the generation pipeline.
type Config struct {
	RateWindow        time.Duration
	CachePrefixLength int
	CacheSize         int
	CacheShared       bool
	GatewayTimeout    time.Duration
	Completion        domain.CompletionParams
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		RateWindow:        24 * time.Hour,
		CachePrefixLength: 30,
		CacheSize:         1024,
		GatewayTimeout:    30 * time.Second,
		Completion: domain.CompletionParams{
			Temperature:     0.7,
			MaxOutputTokens: 1024,
		},
	}
}

// Service runs the suggestion pipeline and the owner-facing record operations.
type Service struct {
	gateway completionGateway
	records recordRepo
	tx      txManager
	limiter *RateLimiter
	cache   *SimilarityCache
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new suggestion service.
func NewService(
	log *slog.Logger,
	cfg Config,
	gateway completionGateway,
	records recordRepo,
	quotas quotaRepo,
	tx txManager,
) (*Service, error) {
	cache, err := NewSimilarityCache(records, cfg.CacheSize, cfg.CachePrefixLength, cfg.CacheShared)
	if err != nil {
		return nil, err
	}

	s := &Service{
		gateway: gateway,
		records: records,
		tx:      tx,
		cache:   cache,
		cfg:     cfg,
		log:     log.With("service", "suggestion"),
		now:     time.Now,
	}
	s.limiter = NewRateLimiter(records, quotas, cfg.RateWindow, s.clock)
	return s, nil
}

// clock returns the current time at the precision the stores keep.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
