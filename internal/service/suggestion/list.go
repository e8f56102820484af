package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/pkg/ctxutil"
)

// GetRecord returns one of the authenticated user's records.
func (s *Service) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.SuggestionRecord, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}

	rec, err := s.records.GetByID(ctx, ownerID, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// ListRecords returns the authenticated user's records, newest first, and
// the total count.
func (s *Service) ListRecords(ctx context.Context, input ListRecordsInput) ([]*domain.SuggestionRecord, int, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	records, total, err := s.records.ListByOwner(ctx, ownerID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	return records, total, nil
}
