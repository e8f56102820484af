package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity name and id. Context errors are not mapped, they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514", "23502", "22P02": // check, not_null, invalid_text_representation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrConflict, err)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
