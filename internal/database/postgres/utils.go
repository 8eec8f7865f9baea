package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgError extracts the PostgreSQL error with the given SQLSTATE, if any
func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

// uniqueViolation reports which constraint a unique violation hit
func uniqueViolation(err error) (string, bool) {
	pgErr, ok := pgError(err, PgErrorCodeUniqueViolation)
	if !ok {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func isForeignKeyViolation(err error) bool {
	_, ok := pgError(err, PgErrorCodeForeignKeyViolation)
	return ok
}

// wrapErr prefixes err with a repository message, passing nil through.
// Values too wide for their column come back as domain.ErrValueTooLong.
func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := pgError(err, PgErrorCodeStringTooLong); ok {
		return domain.ErrValueTooLong
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// beginTx starts a new transaction with the package-wide error message.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}) (pgx.Tx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return tx, nil
}

func commit(ctx context.Context, tx pgx.Tx) error {
	return wrapErr(ErrMsgFailedToCommitTransaction, tx.Commit(ctx))
}
