// Package suggestion implements the suggestion-record repository using PostgreSQL.
package suggestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/pathwise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

const (
	table  = "suggestion_records"
	entity = "suggestion_record"
)

var columns = []string{
	"id", "owner_id", "items", "background", "goals", "experience_level",
	"background_prefix", "created_at", "viewed_at", "completed_items",
	"rating", "reuse_count", "last_reused_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides suggestion-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suggestion-record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert stores rec and returns its ID. A zero ID is replaced with a new one.
func (r *Repo) Insert(ctx context.Context, rec *domain.SuggestionRecord) (uuid.UUID, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if n := len(rec.Items); n < domain.MinSuggestionItems || n > domain.MaxSuggestionItems {
		return uuid.Nil, fmt.Errorf("%s %s: %d items: %w", entity, id, n, domain.ErrValidation)
	}

	items, err := encodeItems(rec.Items)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", entity, id, err)
	}
	completed, err := encodeCompleted(rec.CompletedItems)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", entity, id, err)
	}

	query, args, err := psql.Insert(table).
		Columns("id", "owner_id", "items", "background", "goals", "experience_level",
			"background_prefix", "created_at", "completed_items").
		Values(id, rec.OwnerID, items, rec.Input.Background, rec.Input.Goals,
			string(rec.Input.ExperienceLevel), rec.BackgroundPrefix, rec.CreatedAt, completed).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return uuid.Nil, postgres.MapError(err, entity, id)
	}
	return id, nil
}

// Update applies patch to the owner's record and returns the new state.
// An empty patch returns the record unchanged.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.SuggestionRecordPatch) (*domain.SuggestionRecord, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, ownerID, id)
	}

	b := psql.Update(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if patch.ViewedAt != nil {
		b = b.Set("viewed_at", *patch.ViewedAt)
	}
	if patch.CompletedItems != nil {
		completed, err := encodeCompleted(patch.CompletedItems)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", entity, id, err)
		}
		b = b.Set("completed_items", completed)
	}
	if patch.Rating != nil {
		b = b.Set("rating", *patch.Rating)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return rec, nil
}

// RecordCacheReuse bumps the reuse counter of a record.
func (r *Repo) RecordCacheReuse(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := psql.Update(table).
		Set("reuse_count", sq.Expr("reuse_count + 1")).
		Set("last_reused_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reuse update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the owner's record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error) {
	return r.getOne(ctx, id, selectRecords().Where(sq.Eq{"id": id, "owner_id": ownerID}))
}

// LockByID is GetByID taking a row lock held until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) LockByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("%s %s: lock requested outside a transaction", entity, id)
	}
	return r.getOne(ctx, id, selectRecords().
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("FOR UPDATE"))
}

// FindLatestByOwner returns the owner's newest record or domain.ErrNotFound.
func (r *Repo) FindLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.SuggestionRecord, error) {
	return r.getOne(ctx, uuid.Nil, selectRecords().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
}

// FindBySimilarInput returns the newest record with matching level and
// background prefix. A nil ownerID matches any owner.
func (r *Repo) FindBySimilarInput(ctx context.Context, ownerID *uuid.UUID, level domain.ExperienceLevel, prefix string) (*domain.SuggestionRecord, error) {
	cond := sq.Eq{"experience_level": string(level), "background_prefix": prefix}
	if ownerID != nil {
		cond["owner_id"] = *ownerID
	}
	return r.getOne(ctx, uuid.Nil, selectRecords().
		Where(cond).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
}

// ListByOwner returns one page of the owner's records, newest first, and the
// owner's total record count. limit <= 0 means no limit.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.SuggestionRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, uuid.Nil)
	}

	b := selectRecords().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(max(offset, 0)))
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, entity, uuid.Nil)
	}
	defer rows.Close()

	out := []*domain.SuggestionRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, entity, uuid.Nil)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return out, total, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, b sq.SelectBuilder) (*domain.SuggestionRecord, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return rec, nil
}

func selectRecords() sq.SelectBuilder {
	return psql.Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type itemRow struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Action string `json:"action"`
}

type completedRow struct {
	ItemTitle   string    `json:"item_title"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       *string   `json:"notes,omitempty"`
}

func encodeItems(items []domain.SuggestionItem) ([]byte, error) {
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{Title: it.Title, Reason: it.Reason, Action: it.Action}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return b, nil
}

func encodeCompleted(items []domain.CompletedItem) ([]byte, error) {
	rows := make([]completedRow, len(items))
	for i, c := range items {
		rows[i] = completedRow{ItemTitle: c.ItemTitle, CompletedAt: c.CompletedAt.UTC(), Notes: c.Notes}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode completed items: %w", err)
	}
	return b, nil
}

func scanRecord(row pgx.Row) (*domain.SuggestionRecord, error) {
	var (
		rec                domain.SuggestionRecord
		itemsRaw, doneRaw  []byte
		level              string
		viewedAt, reusedAt *time.Time
	)
	err := row.Scan(
		&rec.ID, &rec.OwnerID, &itemsRaw, &rec.Input.Background, &rec.Input.Goals, &level,
		&rec.BackgroundPrefix, &rec.CreatedAt, &viewedAt, &doneRaw,
		&rec.Rating, &rec.ReuseCount, &reusedAt,
	)
	if err != nil {
		return nil, err
	}

	var items []itemRow
	if err := json.Unmarshal(itemsRaw, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	rec.Items = make([]domain.SuggestionItem, len(items))
	for i, it := range items {
		rec.Items[i] = domain.SuggestionItem{Title: it.Title, Reason: it.Reason, Action: it.Action}
	}

	var done []completedRow
	if err := json.Unmarshal(doneRaw, &done); err != nil {
		return nil, fmt.Errorf("decode completed items: %w", err)
	}
	rec.CompletedItems = make([]domain.CompletedItem, len(done))
	for i, c := range done {
		rec.CompletedItems[i] = domain.CompletedItem{ItemTitle: c.ItemTitle, CompletedAt: c.CompletedAt.UTC(), Notes: c.Notes}
	}

	rec.Input.ExperienceLevel = domain.ExperienceLevel(level)
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.ViewedAt = utcPtr(viewedAt)
	rec.LastReusedAt = utcPtr(reusedAt)
	return &rec, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
