package suggestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

type latestRecordFinder interface {
	FindLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.SuggestionRecord, error)
}

// Reservation is a claimed generation window. ReservedAt doubles as the
// creation time of the record produced under it.
type Reservation struct {
	OwnerID    uuid.UUID
	ReservedAt time.Time
}

// RateLimiter allows one generation per owner per rolling window.
type RateLimiter struct {
	records latestRecordFinder
	quotas  quotaRepo
	window  time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a RateLimiter. now must return times at store precision.
func NewRateLimiter(records latestRecordFinder, quotas quotaRepo, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{records: records, quotas: quotas, window: window, now: now}
}

// CheckAndReserve claims the owner's window or returns a *domain.QuotaExceededError.
// The claim itself is a single compare-and-swap in the quota store, so two
// concurrent calls for one owner cannot both succeed.
func (l *RateLimiter) CheckAndReserve(ctx context.Context, ownerID uuid.UUID) (Reservation, error) {
	now := l.now()

	latest, err := l.records.FindLatestByOwner(ctx, ownerID)
	switch {
	case err == nil:
		if elapsed := now.Sub(latest.CreatedAt); elapsed < l.window {
			return Reservation{}, domain.NewQuotaExceededError(l.window - elapsed)
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return Reservation{}, fmt.Errorf("find latest record: %w", err)
	}

	state, ok, err := l.quotas.Reserve(ctx, ownerID, now, l.window)
	if err != nil {
		return Reservation{}, fmt.Errorf("reserve window: %w", err)
	}
	if !ok {
		return Reservation{}, domain.NewQuotaExceededError(state.WindowStart.Add(l.window).Sub(now))
	}

	return Reservation{OwnerID: ownerID, ReservedAt: state.WindowStart}, nil
}

// Release gives a reservation back after the generation failed to persist.
func (l *RateLimiter) Release(ctx context.Context, r Reservation) error {
	if err := l.quotas.Release(ctx, r.OwnerID, r.ReservedAt); err != nil {
		return fmt.Errorf("release window: %w", err)
	}
	return nil
}
