package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bounds shared by input validation, the schema validator and the stores.
const (
	BackgroundMinLength = 10
	BackgroundMaxLength = 2000
	GoalsMaxLength      = 1000

	MinSuggestionItems = 1
	MaxSuggestionItems = 10

	MinRating = 1
	MaxRating = 5
)

// ExperienceLevel is the self-reported seniority of the requesting user.
type ExperienceLevel string

const (
	ExperienceLevelBeginner     ExperienceLevel = "beginner"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelAdvanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) String() string { return string(l) }

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceLevelBeginner, ExperienceLevelIntermediate, ExperienceLevelAdvanced:
		return true
	}
	return false
}

// SuggestionItem is one recommendation. All fields are non-empty after trimming.
type SuggestionItem struct {
	Title  string
	Reason string
	Action string
}

// SuggestionInput is the user context a generation is based on.
type SuggestionInput struct {
	Background      string
	Goals           *string
	ExperienceLevel ExperienceLevel
}

// CompletedItem marks one item of a record as done by the owner.
// Items are identified by title; a record holds at most one entry per title.
type CompletedItem struct {
	ItemTitle   string
	CompletedAt time.Time
	Notes       *string
}

// SuggestionRecord is the persisted result of one generation.
type SuggestionRecord struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Items            []SuggestionItem
	Input            SuggestionInput
	BackgroundPrefix string
	CreatedAt        time.Time
	ViewedAt         *time.Time
	CompletedItems   []CompletedItem
	Rating           *int
	ReuseCount       int
	LastReusedAt     *time.Time
}

// HasItem reports whether the record contains an item with the given title.
func (r *SuggestionRecord) HasItem(title string) bool {
	for _, it := range r.Items {
		if it.Title == title {
			return true
		}
	}
	return false
}

// WithCompletedItem returns the completed set with c added, replacing any
// previous completion of the same item.
func (r *SuggestionRecord) WithCompletedItem(c CompletedItem) []CompletedItem {
	out := make([]CompletedItem, 0, len(r.CompletedItems)+1)
	for _, existing := range r.CompletedItems {
		if existing.ItemTitle == c.ItemTitle {
			continue
		}
		out = append(out, existing)
	}
	return append(out, c)
}

// SuggestionRecordPatch lists the fields an owner may change after creation.
// Nil fields are left untouched.
type SuggestionRecordPatch struct {
	ViewedAt       *time.Time
	CompletedItems []CompletedItem
	Rating         *int
}

// IsEmpty reports whether the patch changes nothing.
func (p SuggestionRecordPatch) IsEmpty() bool {
	return p.ViewedAt == nil && p.CompletedItems == nil && p.Rating == nil
}

// RateWindow is the persisted start of an owner's current generation window.
type RateWindow struct {
	OwnerID     uuid.UUID
	WindowStart time.Time
}

// CompletionParams are the model parameters passed to a completion gateway.
type CompletionParams struct {
	Temperature     float64
	MaxOutputTokens int
}
