package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
	"github.com/heartmarshall/pathwise-backend/internal/llmoutput"
	"github.com/heartmarshall/pathwise-backend/pkg/ctxutil"
)

// maxLoggedResponse bounds the raw model output attached to format warnings.
const maxLoggedResponse = 512

// GenerateResult is the outcome of one pipeline run. Degraded marks a
// fallback result; Cached marks a reused earlier record. RecordID is
// uuid.Nil when the reused record belongs to another owner.
type GenerateResult struct {
	RecordID  uuid.UUID
	Items     []domain.SuggestionItem
	Degraded  bool
	Cached    bool
	CreatedAt time.Time
}

// RequestSuggestions runs Generate for the authenticated user.
func (s *Service) RequestSuggestions(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.Generate(ctx, ownerID, input)
}

// Generate produces and stores suggestions for ownerID.
//
// Only input, quota and persistence failures are returned. Gateway and
// model-format failures degrade to Fallback.
func (s *Service) Generate(ctx context.Context, ownerID uuid.UUID, input GenerateInput) (*GenerateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.toDomain()

	reservation, err := s.limiter.CheckAndReserve(ctx, ownerID)
	if err != nil {
		var quotaErr *domain.QuotaExceededError
		if errors.As(err, &quotaErr) {
			s.log.InfoContext(ctx, "suggestion quota exceeded",
				slog.String("owner_id", ownerID.String()),
				slog.Int("retry_after_s", quotaErr.RetryAfterSeconds()),
			)
			return nil, err
		}
		s.log.ErrorContext(ctx, "rate check failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if result, ok := s.fromCache(ctx, ownerID, in); ok {
		return result, nil
	}

	items, degraded := s.complete(ctx, ownerID, in)

	rec := &domain.SuggestionRecord{
		OwnerID:          ownerID,
		Items:            items,
		Input:            in,
		BackgroundPrefix: s.cache.Prefix(in.Background),
		CreatedAt:        reservation.ReservedAt,
		CompletedItems:   []domain.CompletedItem{},
	}

	id, err := s.records.Insert(ctx, rec)
	if err != nil {
		if relErr := s.limiter.Release(context.WithoutCancel(ctx), reservation); relErr != nil {
			s.log.ErrorContext(ctx, "release reservation",
				slog.String("owner_id", ownerID.String()),
				slog.String("error", relErr.Error()),
			)
		}
		s.log.ErrorContext(ctx, "persist suggestion record",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: insert record: %w", domain.ErrPersistence, err)
	}
	rec.ID = id
	s.cache.Remember(rec)

	s.log.InfoContext(ctx, "suggestions generated",
		slog.String("owner_id", ownerID.String()),
		slog.String("record_id", id.String()),
		slog.Int("items", len(items)),
		slog.Bool("degraded", degraded),
	)

	return &GenerateResult{
		RecordID:  id,
		Items:     cloneItems(items),
		Degraded:  degraded,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// fromCache answers from an earlier similar record. Cache failures count as misses.
func (s *Service) fromCache(ctx context.Context, ownerID uuid.UUID, in domain.SuggestionInput) (*GenerateResult, bool) {
	rec, ok, err := s.cache.Lookup(ctx, ownerID, in)
	if err != nil {
		s.log.WarnContext(ctx, "similarity lookup failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	if err := s.records.RecordCacheReuse(ctx, rec.ID, s.clock()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Record is gone from the store; the LRU entry is stale.
			s.cache.Forget(ownerID, in)
			return nil, false
		}
		s.log.WarnContext(ctx, "record cache reuse",
			slog.String("record_id", rec.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "suggestions served from cache",
		slog.String("owner_id", ownerID.String()),
		slog.String("record_id", rec.ID.String()),
	)

	recordID := rec.ID
	if rec.OwnerID != ownerID {
		recordID = uuid.Nil
	}

	return &GenerateResult{
		RecordID:  recordID,
		Items:     cloneItems(rec.Items),
		Cached:    true,
		CreatedAt: rec.CreatedAt,
	}, true
}

// complete makes the single gateway attempt and parses the answer.
// degraded reports that Fallback was used.
func (s *Service) complete(ctx context.Context, ownerID uuid.UUID, in domain.SuggestionInput) (items []domain.SuggestionItem, degraded bool) {
	prompt := BuildPrompt(in)

	callCtx := ctx
	if s.cfg.GatewayTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.GatewayTimeout)
		defer cancel()
	}

	raw, err := s.gateway.Complete(callCtx, prompt, s.cfg.Completion)
	if err != nil {
		s.log.WarnContext(ctx, "completion gateway failed, using fallback",
			slog.String("owner_id", ownerID.String()),
			slog.Bool("timeout", errors.Is(err, domain.ErrGatewayTimeout) || errors.Is(err, context.DeadlineExceeded)),
			slog.String("error", err.Error()),
		)
		return Fallback(), true
	}

	items, err = llmoutput.Parse(raw)
	if err != nil {
		s.log.WarnContext(ctx, "model output rejected, using fallback",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
			slog.String("raw_response", truncate(raw, maxLoggedResponse)),
		)
		return Fallback(), true
	}

	return items, false
}

func cloneItems(items []domain.SuggestionItem) []domain.SuggestionItem {
	out := make([]domain.SuggestionItem, len(items))
	copy(out, items)
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
