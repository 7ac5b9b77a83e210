package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/VolkofAndrey/micro-rest-app/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th ExecContext inside a
// transaction, counting from 1. Reads pass through uncounted. A FailOn of 0
// never fails, which lets a test count the writes an operation makes.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	execs atomic.Int32
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, owner: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Execs reports how many ExecContext calls were attempted across all
// transactions so far.
func (u *FailOnNthExecUoW) Execs() int {
	return int(u.execs.Load())
}

type failOnNthExec struct {
	db.DBTX
	owner *FailOnNthExecUoW
	count int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.owner.execs.Add(1)
	f.count++
	if f.owner.FailOn > 0 && f.count == f.owner.FailOn {
		return nil, f.owner.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
