package suggestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

type similarRecordFinder interface {
	FindBySimilarInput(ctx context.Context, ownerID *uuid.UUID, level domain.ExperienceLevel, prefix string) (*domain.SuggestionRecord, error)
}

const sharedScope = "*"

// SimilarityCache finds an earlier record for a near-duplicate input: same
// experience level and same normalized background prefix. Recent records are
// kept in an LRU in front of the store.
type SimilarityCache struct {
	recent    *lru.Cache[string, *domain.SuggestionRecord]
	records   similarRecordFinder
	prefixLen int
	shared    bool
}

// NewSimilarityCache creates a SimilarityCache. With shared set, records of
// any owner can satisfy a lookup.
func NewSimilarityCache(records similarRecordFinder, size, prefixLen int, shared bool) (*SimilarityCache, error) {
	recent, err := lru.New[string, *domain.SuggestionRecord](size)
	if err != nil {
		return nil, fmt.Errorf("create similarity lru: %w", err)
	}
	return &SimilarityCache{
		recent:    recent,
		records:   records,
		prefixLen: prefixLen,
		shared:    shared,
	}, nil
}

// Prefix returns the similarity key part derived from background.
func (c *SimilarityCache) Prefix(background string) string {
	return domain.BackgroundPrefix(background, c.prefixLen)
}

func (c *SimilarityCache) key(ownerID uuid.UUID, level domain.ExperienceLevel, prefix string) string {
	scope := sharedScope
	if !c.shared {
		scope = ownerID.String()
	}
	return scope + "|" + string(level) + "|" + prefix
}

// Lookup returns a matching record, or ok=false on a miss.
func (c *SimilarityCache) Lookup(ctx context.Context, ownerID uuid.UUID, in domain.SuggestionInput) (*domain.SuggestionRecord, bool, error) {
	prefix := c.Prefix(in.Background)
	key := c.key(ownerID, in.ExperienceLevel, prefix)

	if rec, ok := c.recent.Get(key); ok {
		return rec, true, nil
	}

	var scope *uuid.UUID
	if !c.shared {
		scope = &ownerID
	}
	rec, err := c.records.FindBySimilarInput(ctx, scope, in.ExperienceLevel, prefix)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find similar record: %w", err)
	}

	c.recent.Add(key, rec)
	return rec, true, nil
}

// Remember makes rec the answer for later lookups with the same key.
func (c *SimilarityCache) Remember(rec *domain.SuggestionRecord) {
	c.recent.Add(c.key(rec.OwnerID, rec.Input.ExperienceLevel, rec.BackgroundPrefix), rec)
}

// Forget drops the in-process entry for the given owner and input.
func (c *SimilarityCache) Forget(ownerID uuid.UUID, in domain.SuggestionInput) {
	c.recent.Remove(c.key(ownerID, in.ExperienceLevel, c.Prefix(in.Background)))
}
