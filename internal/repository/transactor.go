package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fundtrack/internal/domain"

	"github.com/lib/pq"
)

// Transactor runs a unit of work in one serializable transaction. The
// callback may be retried, so it must not have effects outside the tx.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type transactorHandler struct {
	Db         *sql.DB
	MaxRetries int
}

func NewTransactor(db *sql.DB, maxRetries int) Transactor {
	return transactorHandler{Db: db, MaxRetries: maxRetries}
}

// postgres error codes that mean "try again"
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
	}
	return false
}

func (h transactorHandler) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 0; attempt <= h.MaxRetries; attempt++ {
		err = h.run(ctx, fn)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.TransientError{Op: "transaction", Err: ctxErr}
		}
		if !isRetryable(err) {
			return err
		}
	}
	return domain.TransientError{
		Op:  fmt.Sprintf("transaction after %d attempts", h.MaxRetries+1),
		Err: err,
	}
}

func (h transactorHandler) run(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := h.Db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
