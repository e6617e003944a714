package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidDate        = errors.New("invalid date")
	ErrQueueEmpty         = errors.New("notification queue is empty")
)

// pgCodes lists the SQLSTATEs that are the caller's fault.
var pgCodes = map[string]error{
	"23505": ErrUniqueViolation, // unique_violation
	"23503": ErrInvalidInput,    // foreign_key_violation
	"23514": ErrInvalidInput,    // check_violation
	"23502": ErrInvalidInput,    // not_null_violation
	"22P02": ErrInvalidInput,    // invalid_text_representation
	"22007": ErrInvalidDate,     // invalid_datetime_format
	"22008": ErrInvalidDate,     // datetime_field_overflow
}

// WrapError maps driver and context errors onto the sentinels above so
// handlers can pick a status code with errors.Is.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sentinel, ok := pgCodes[pgErr.Code]
		if !ok {
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
		if pgErr.ConstraintName != "" {
			return fmt.Errorf("%s: %w (%s)", op, sentinel, pgErr.ConstraintName)
		}
		return fmt.Errorf("%s: %w", op, sentinel)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
