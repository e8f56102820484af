package testhelper

import (
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RecordOption customizes a seeded record.
type RecordOption func(*domain.SuggestionRecord)

// WithCreatedAt sets the record's creation time.
func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.SuggestionRecord) { r.CreatedAt = t.UTC().Truncate(time.Microsecond) }
}

// WithInput sets background and level, and derives the 30-rune prefix.
func WithInput(background string, level domain.ExperienceLevel) RecordOption {
	return func(r *domain.SuggestionRecord) {
		r.Input.Background = background
		r.Input.ExperienceLevel = level
		r.BackgroundPrefix = domain.BackgroundPrefix(background, 30)
	}
}

// SeedRecord inserts a suggestion record for ownerID with two items and a
// unique background. Returns the stored record.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...RecordOption) domain.SuggestionRecord {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	background := "Seeded background " + suffix + " for repository tests"
	rec := domain.SuggestionRecord{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Items: []domain.SuggestionItem{
			{Title: "First " + suffix, Reason: "Seeded reason", Action: "Seeded action"},
			{Title: "Second " + suffix, Reason: "Seeded reason", Action: "Seeded action"},
		},
		Input: domain.SuggestionInput{
			Background:      background,
			ExperienceLevel: domain.ExperienceLevelIntermediate,
		},
		BackgroundPrefix: domain.BackgroundPrefix(background, 30),
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
		CompletedItems:   []domain.CompletedItem{},
	}
	for _, o := range opts {
		o(&rec)
	}

	type itemRow struct {
		Title  string `json:"title"`
		Reason string `json:"reason"`
		Action string `json:"action"`
	}
	rows := make([]itemRow, len(rec.Items))
	for i, it := range rec.Items {
		rows[i] = itemRow{Title: it.Title, Reason: it.Reason, Action: it.Action}
	}
	items, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord marshal items: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO suggestion_records
		     (id, owner_id, items, background, goals, experience_level, background_prefix, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.OwnerID, items, rec.Input.Background, rec.Input.Goals,
		string(rec.Input.ExperienceLevel), rec.BackgroundPrefix, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
