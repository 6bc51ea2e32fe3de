// Package pgerr translates PostgreSQL driver errors into the API error
// taxonomy so that handlers never inspect driver internals.
package pgerr

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/alexken/stockroom/internal/apperror"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	notNullViolation    = "23502"
)

// Translate maps constraint violations and sql.ErrNoRows onto apperror
// kinds. Errors it does not recognise pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("record not found")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return apperror.Conflict("duplicate record (%s)", pqErr.Constraint)
		case foreignKeyViolation:
			return apperror.Conflict("referenced record in use or missing (%s)", pqErr.Constraint)
		case checkViolation, notNullViolation:
			return apperror.Validation("constraint violated (%s)", pqErr.Constraint)
		}
	}
	return err
}
