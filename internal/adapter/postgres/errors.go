package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

// SQLSTATE codes raised by the study schema.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503" // stat or activity for an unknown user or card
	codeCheckViolation      = "23514" // negative counters, interval outside the ladder, unknown mode
	codeSerialization       = "40001"
)

// MapError translates a storage error into the domain sentinel the REST
// layer maps to a status, prefixed with the entity and key, e.g.
// "card_stat <card id>: not found". A missing row and a dangling
// reference both become domain.ErrNotFound, so recording an outcome for a
// card that was deleted concurrently reads as 404. Context errors and
// unknown failures keep their original cause.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	mapped := err
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		mapped = domain.ErrNotFound
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case codeUniqueViolation:
			mapped = domain.ErrAlreadyExists
		case codeForeignKeyViolation:
			mapped = domain.ErrNotFound
		case codeCheckViolation:
			mapped = domain.ErrValidation
		case codeSerialization:
			mapped = domain.ErrConflict
		}
	}
	return fmt.Errorf("%s %v: %w", entity, key, mapped)
}
