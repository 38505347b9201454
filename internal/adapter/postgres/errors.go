package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// Postgres error codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeRaiseException      = "P0001"
	codeInsufficientPriv    = "42501"
)

// MapError converts pgx/pgconn errors to domain errors, prefixing the
// entity and key for context. context.DeadlineExceeded and context.Canceled
// are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		case codeRaiseException:
			// Raised by the privileged SQL functions, e.g. unknown target user.
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.Message, domain.ErrNotFound)
		case codeInsufficientPriv:
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.Message, domain.ErrForbidden)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
