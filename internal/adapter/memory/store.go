// Package memory implements the suggestion record and quota stores in
// process memory. It backs local development (database.driver: memory) and
// service tests; state is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

type quotaState struct {
	windowStart time.Time
	previous    *time.Time
}

// Store keeps suggestion records and rate windows in maps.
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.SuggestionRecord
	seq     map[uuid.UUID]int // insertion order, breaks CreatedAt ties
	next    int
	quotas  map[uuid.UUID]quotaState

	// txMu serializes RunInTx callbacks so LockByID behaves like a row lock.
	txMu sync.Mutex
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		records: make(map[uuid.UUID]*domain.SuggestionRecord),
		seq:     make(map[uuid.UUID]int),
		quotas:  make(map[uuid.UUID]quotaState),
	}
}

// Ping always succeeds. It lets the store back readiness probes.
func (s *Store) Ping(context.Context) error { return nil }

// RunInTx runs fn while holding the store's transaction lock.
// Nested calls deadlock.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Insert stores a copy of rec. A zero ID is replaced with a new one.
func (s *Store) Insert(_ context.Context, rec *domain.SuggestionRecord) (uuid.UUID, error) {
	if n := len(rec.Items); n < domain.MinSuggestionItems || n > domain.MaxSuggestionItems {
		return uuid.Nil, fmt.Errorf("suggestion record: %d items: %w", n, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := cloneRecord(rec)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, exists := s.records[c.ID]; exists {
		return uuid.Nil, fmt.Errorf("suggestion record %s: %w", c.ID, domain.ErrAlreadyExists)
	}
	if c.CompletedItems == nil {
		c.CompletedItems = []domain.CompletedItem{}
	}

	s.records[c.ID] = c
	s.seq[c.ID] = s.next
	s.next++
	return c.ID, nil
}

// GetByID returns the owner's record or domain.ErrNotFound.
func (s *Store) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, notFound(id)
	}
	return cloneRecord(rec), nil
}

// LockByID is GetByID. Exclusion comes from RunInTx.
func (s *Store) LockByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.SuggestionRecord, error) {
	return s.GetByID(ctx, ownerID, id)
}

// Update applies patch to the owner's record.
func (s *Store) Update(_ context.Context, ownerID, id uuid.UUID, patch domain.SuggestionRecordPatch) (*domain.SuggestionRecord, error) {
	if patch.Rating != nil && (*patch.Rating < domain.MinRating || *patch.Rating > domain.MaxRating) {
		return nil, fmt.Errorf("suggestion record %s: rating %d: %w", id, *patch.Rating, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, notFound(id)
	}

	if patch.ViewedAt != nil {
		v := *patch.ViewedAt
		rec.ViewedAt = &v
	}
	if patch.CompletedItems != nil {
		rec.CompletedItems = cloneCompleted(patch.CompletedItems)
	}
	if patch.Rating != nil {
		r := *patch.Rating
		rec.Rating = &r
	}
	return cloneRecord(rec), nil
}

// ListByOwner returns the owner's records newest first and their total count.
func (s *Store) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.SuggestionRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.sorted(func(r *domain.SuggestionRecord) bool { return r.OwnerID == ownerID })
	total := len(owned)

	if offset >= total {
		return []*domain.SuggestionRecord{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page := make([]*domain.SuggestionRecord, 0, end-offset)
	for _, r := range owned[offset:end] {
		page = append(page, cloneRecord(r))
	}
	return page, total, nil
}

// FindLatestByOwner returns the owner's newest record or domain.ErrNotFound.
func (s *Store) FindLatestByOwner(_ context.Context, ownerID uuid.UUID) (*domain.SuggestionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.sorted(func(r *domain.SuggestionRecord) bool { return r.OwnerID == ownerID })
	if len(owned) == 0 {
		return nil, fmt.Errorf("latest suggestion record of %s: %w", ownerID, domain.ErrNotFound)
	}
	return cloneRecord(owned[0]), nil
}

// FindBySimilarInput returns the newest record with matching level and
// background prefix. A nil ownerID matches any owner.
func (s *Store) FindBySimilarInput(_ context.Context, ownerID *uuid.UUID, level domain.ExperienceLevel, prefix string) (*domain.SuggestionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.sorted(func(r *domain.SuggestionRecord) bool {
		if ownerID != nil && r.OwnerID != *ownerID {
			return false
		}
		return r.Input.ExperienceLevel == level && r.BackgroundPrefix == prefix
	})
	if len(matches) == 0 {
		return nil, fmt.Errorf("similar suggestion record: %w", domain.ErrNotFound)
	}
	return cloneRecord(matches[0]), nil
}

// RecordCacheReuse bumps the reuse counter of a record.
func (s *Store) RecordCacheReuse(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return notFound(id)
	}
	rec.ReuseCount++
	t := at
	rec.LastReusedAt = &t
	return nil
}

// sorted returns records accepted by keep, newest first. Caller holds mu.
func (s *Store) sorted(keep func(*domain.SuggestionRecord) bool) []*domain.SuggestionRecord {
	var out []*domain.SuggestionRecord
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out
}

// ---------------------------------------------------------------------------
// Quotas
// ---------------------------------------------------------------------------

// Reserve starts a new window for ownerID if the current one began at or
// before now-window. Check and set happen under one lock.
func (s *Store) Reserve(_ context.Context, ownerID uuid.UUID, now time.Time, window time.Duration) (domain.RateWindow, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, exists := s.quotas[ownerID]
	if exists && st.windowStart.After(now.Add(-window)) {
		return domain.RateWindow{OwnerID: ownerID, WindowStart: st.windowStart}, false, nil
	}

	next := quotaState{windowStart: now}
	if exists {
		prev := st.windowStart
		next.previous = &prev
	}
	s.quotas[ownerID] = next
	return domain.RateWindow{OwnerID: ownerID, WindowStart: now}, true, nil
}

// Release restores the window that preceded the reservation at windowStart.
func (s *Store) Release(_ context.Context, ownerID uuid.UUID, windowStart time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, exists := s.quotas[ownerID]
	if !exists || !st.windowStart.Equal(windowStart) {
		return nil
	}
	if st.previous == nil {
		delete(s.quotas, ownerID)
		return nil
	}
	s.quotas[ownerID] = quotaState{windowStart: *st.previous}
	return nil
}

func notFound(id uuid.UUID) error {
	return fmt.Errorf("suggestion record %s: %w", id, domain.ErrNotFound)
}

func cloneRecord(r *domain.SuggestionRecord) *domain.SuggestionRecord {
	c := *r
	c.Items = append([]domain.SuggestionItem(nil), r.Items...)
	c.CompletedItems = cloneCompleted(r.CompletedItems)
	if r.Input.Goals != nil {
		g := *r.Input.Goals
		c.Input.Goals = &g
	}
	if r.ViewedAt != nil {
		v := *r.ViewedAt
		c.ViewedAt = &v
	}
	if r.Rating != nil {
		v := *r.Rating
		c.Rating = &v
	}
	if r.LastReusedAt != nil {
		v := *r.LastReusedAt
		c.LastReusedAt = &v
	}
	return &c
}

func cloneCompleted(items []domain.CompletedItem) []domain.CompletedItem {
	if items == nil {
		return nil
	}
	out := make([]domain.CompletedItem, len(items))
	for i, it := range items {
		out[i] = it
		if it.Notes != nil {
			n := *it.Notes
			out[i].Notes = &n
		}
	}
	return out
}
