package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"TRIPPLANNER_BACK-END/internal/apperror"
)

// mapPgError converts driver errors into apperror kinds. what names the
// record for the message, e.g. "trip".
func mapPgError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.New(apperror.KindNotFound, what+" not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.Wrap(apperror.KindPersistenceConflict, err, what+" already exists")
		case "23503":
			return apperror.Wrap(apperror.KindPersistenceConflict, err, what+" references a missing record")
		case "23514", "22P02":
			return apperror.Wrap(apperror.KindInvalidEntry, err, what+" violates a constraint")
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(apperror.KindUpstreamUnavailable, err, "database timed out")
	}
	return err
}
