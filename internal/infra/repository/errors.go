package repository

import (
	"context"
	"errors"

	"hotelier/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation    = "23505"
	codeForeignKeyViolated = "23503"
	codeExclusionViolation = "23P01"
)

// wrapPgErr classifies a pgx error into a repository error kind. The
// exclusion constraint on (room_id, stay) reports as a conflict: it means a
// concurrent writer booked an overlapping range.
func wrapPgErr(msg string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return infra.WrapRepoErr(msg, err, infra.KindTimeout)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case codeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
