package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/edvall/cratrack/internal/db"
)

// FailOnNthExecUoW is a unit of work whose transaction fails the Nth write.
// Rollback tests use it to break a multi-write operation (for example the
// timesheet entry plus its linked win) partway through and assert that no
// row from the aborted transaction survives.
//
// Only ExecContext calls count, starting at 1; reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	injected := &execFailer{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, injected); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type execFailer struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *execFailer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
