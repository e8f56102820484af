package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/pkg/ctxutil"
)

// MarkViewed records the first time the owner opened a record.
// Later calls keep the original time.
func (s *Service) MarkViewed(ctx context.Context, recordID uuid.UUID) (*domain.SuggestionRecord, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}

	var result *domain.SuggestionRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.LockByID(txCtx, ownerID, recordID)
		if err != nil {
			return fmt.Errorf("lock record: %w", err)
		}
		if rec.ViewedAt != nil {
			result = rec
			return nil
		}

		now := s.clock()
		result, err = s.records.Update(txCtx, ownerID, recordID, domain.SuggestionRecordPatch{ViewedAt: &now})
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CompleteItem marks an item of the record as done. Completing the same item
// again replaces its time and notes.
func (s *Service) CompleteItem(ctx context.Context, input CompleteItemInput) (*domain.SuggestionRecord, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.ItemTitle)
	var notes *string
	if input.Notes != nil {
		if n := strings.TrimSpace(*input.Notes); n != "" {
			notes = &n
		}
	}

	var result *domain.SuggestionRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.LockByID(txCtx, ownerID, input.RecordID)
		if err != nil {
			return fmt.Errorf("lock record: %w", err)
		}
		if !rec.HasItem(title) {
			return domain.NewValidationError("item_title", "not an item of this record")
		}

		completed := rec.WithCompletedItem(domain.CompletedItem{
			ItemTitle:   title,
			CompletedAt: s.clock(),
			Notes:       notes,
		})
		result, err = s.records.Update(txCtx, ownerID, input.RecordID, domain.SuggestionRecordPatch{CompletedItems: completed})
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "suggestion item completed",
		slog.String("owner_id", ownerID.String()),
		slog.String("record_id", input.RecordID.String()),
	)

	return result, nil
}

// RateRecord stores the owner's 1-5 rating, replacing any earlier one.
func (s *Service) RateRecord(ctx context.Context, input RateRecordInput) (*domain.SuggestionRecord, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rating := input.Rating
	rec, err := s.records.Update(ctx, ownerID, input.RecordID, domain.SuggestionRecordPatch{Rating: &rating})
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	return rec, nil
}
