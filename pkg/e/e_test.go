package e_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fieldops/pkg/e"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), e.ErrDeadline},
		{"canceled", context.Canceled, e.ErrCanceled},
		{"unique", &pgconn.PgError{Code: "23505"}, e.ErrUniqueViolation},
		{"foreign_key", &pgconn.PgError{Code: "23503"}, e.ErrInvalidInput},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "teams_lat_check"}, e.ErrInvalidInput},
		{"not_null", &pgconn.PgError{Code: "23502"}, e.ErrInvalidInput},
		{"bad_date", &pgconn.PgError{Code: "22007"}, e.ErrInvalidDate},
		{"other_pg", &pgconn.PgError{Code: "XX000"}, e.ErrInternal},
		{"no_rows", pgx.ErrNoRows, e.ErrNotFound},
		{"unknown", errors.New("boom"), e.ErrInternal},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := e.WrapError(ctx, "op", c.in)
			if !errors.Is(got, c.want) {
				t.Fatalf("WrapError(%v)=%v, want wrapping %v", c.in, got, c.want)
			}
		})
	}

	expired, cancel := context.WithTimeout(ctx, 0)
	defer cancel()
	<-expired.Done()
	if got := e.WrapError(expired, "op", errors.New("conn closed")); !errors.Is(got, e.ErrDeadline) {
		t.Fatalf("expired context must map to ErrDeadline, got %v", got)
	}

	got := e.WrapError(ctx, "op", &pgconn.PgError{Code: "23505", ConstraintName: "teams_name_key"})
	if got.Error() != "op: unique violation (teams_name_key)" {
		t.Fatalf("unexpected message %q", got.Error())
	}

	if e.WrapError(ctx, "op", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}
