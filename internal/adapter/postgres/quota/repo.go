// Package quota implements the per-owner generation window store using PostgreSQL.
package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pathwise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

const (
	table  = "suggestion_quotas"
	entity = "suggestion_quota"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides quota persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quota repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Reserve starts a new window at now for ownerID unless the current window
// began after now-window. The check and the write are one statement: the
// conditional upsert returns no row when the window is still open.
func (r *Repo) Reserve(ctx context.Context, ownerID uuid.UUID, now time.Time, window time.Duration) (domain.RateWindow, bool, error) {
	query, args, err := psql.Insert(table).
		Columns("owner_id", "window_start").
		Values(ownerID, now).
		Suffix(`ON CONFLICT (owner_id) DO UPDATE
			SET previous_window_start = suggestion_quotas.window_start,
			    window_start          = EXCLUDED.window_start
			WHERE suggestion_quotas.window_start <= ?
			RETURNING window_start`, now.Add(-window)).
		ToSql()
	if err != nil {
		return domain.RateWindow{}, false, fmt.Errorf("build reserve: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var start time.Time
	err = q.QueryRow(ctx, query, args...).Scan(&start)
	if err == nil {
		return domain.RateWindow{OwnerID: ownerID, WindowStart: start.UTC()}, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.RateWindow{}, false, postgres.MapError(err, entity, ownerID)
	}

	current, err := r.current(ctx, q, ownerID)
	if err != nil {
		return domain.RateWindow{}, false, err
	}
	return current, false, nil
}

// Release restores the window that preceded the reservation at windowStart.
// A first-ever reservation is rolled back to the epoch, which never blocks.
// It is a no-op when the owner's window has moved on since.
func (r *Repo) Release(ctx context.Context, ownerID uuid.UUID, windowStart time.Time) error {
	query, args, err := psql.Update(table).
		Set("window_start", sq.Expr("COALESCE(previous_window_start, 'epoch'::timestamptz)")).
		Set("previous_window_start", nil).
		Where(sq.Eq{"owner_id": ownerID, "window_start": windowStart}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build release: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, ownerID)
	}
	return nil
}

// Get returns the owner's current window or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, ownerID uuid.UUID) (domain.RateWindow, error) {
	return r.current(ctx, postgres.QuerierFromCtx(ctx, r.pool), ownerID)
}

func (r *Repo) current(ctx context.Context, q postgres.Querier, ownerID uuid.UUID) (domain.RateWindow, error) {
	query, args, err := psql.Select("window_start").From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return domain.RateWindow{}, fmt.Errorf("build select: %w", err)
	}

	var start time.Time
	if err := q.QueryRow(ctx, query, args...).Scan(&start); err != nil {
		return domain.RateWindow{}, postgres.MapError(err, entity, ownerID)
	}
	return domain.RateWindow{OwnerID: ownerID, WindowStart: start.UTC()}, nil
}
