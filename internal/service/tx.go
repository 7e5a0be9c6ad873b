package service

import (
	"context"
	"database/sql"
	"time"

	"fundtrack/internal/repository"
)

// txRunner bounds each unit of work by the operation timeout before handing
// it to the transactor.
type txRunner struct {
	Transactor repository.Transactor
	Timeout    time.Duration
}

func (r txRunner) run(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return r.Transactor.WithTx(ctx, fn)
}
