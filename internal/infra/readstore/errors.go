package readstore

import (
	"context"
	"errors"

	"hotelier/internal/infra"

	"github.com/jackc/pgx/v5"
)

func wrapReadErr(msg string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return infra.WrapRepoErr(msg, err, infra.KindTimeout)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
