package suggestion

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// GenerateInput holds the user context for a generation request.
type GenerateInput struct {
	Background      string
	Goals           *string
	ExperienceLevel string
}

// Validate checks all fields and collects all errors.
// Lengths are counted in characters after trimming.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	bg := utf8.RuneCountInString(strings.TrimSpace(i.Background))
	if bg < domain.BackgroundMinLength {
		errs = append(errs, domain.FieldError{
			Field:   "background",
			Message: fmt.Sprintf("min %d characters", domain.BackgroundMinLength),
		})
	}
	if bg > domain.BackgroundMaxLength {
		errs = append(errs, domain.FieldError{
			Field:   "background",
			Message: fmt.Sprintf("max %d characters", domain.BackgroundMaxLength),
		})
	}

	if i.Goals != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Goals)) > domain.GoalsMaxLength {
		errs = append(errs, domain.FieldError{
			Field:   "goals",
			Message: fmt.Sprintf("max %d characters", domain.GoalsMaxLength),
		})
	}

	if !domain.ExperienceLevel(i.ExperienceLevel).IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "experience_level",
			Message: "must be one of beginner, intermediate, advanced",
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toDomain returns the trimmed input. Blank goals become nil.
func (i GenerateInput) toDomain() domain.SuggestionInput {
	in := domain.SuggestionInput{
		Background:      strings.TrimSpace(i.Background),
		ExperienceLevel: domain.ExperienceLevel(i.ExperienceLevel),
	}
	if i.Goals != nil {
		if g := strings.TrimSpace(*i.Goals); g != "" {
			in.Goals = &g
		}
	}
	return in
}

// CompleteItemInput marks one item of a record as done.
type CompleteItemInput struct {
	RecordID  uuid.UUID
	ItemTitle string
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i CompleteItemInput) Validate() error {
	var errs []domain.FieldError
	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if strings.TrimSpace(i.ItemTitle) == "" {
		errs = append(errs, domain.FieldError{Field: "item_title", Message: "required"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > 1000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RateRecordInput holds the owner's rating of a record.
type RateRecordInput struct {
	RecordID uuid.UUID
	Rating   int
}

// Validate checks all fields and collects all errors.
func (i RateRecordInput) Validate() error {
	var errs []domain.FieldError
	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{
			Field:   "rating",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating),
		})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecordsInput holds pagination parameters.
type ListRecordsInput struct {
	Limit  int
	Offset int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Validate checks all fields and collects all errors.
func (i ListRecordsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
