package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by a pgx pool and a pgx transaction, so
// repository methods can run inside or outside a unit of work unchanged.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UnitOfWork scopes a group of writes to one database transaction. Ownership
// is decided once when the unit is created: a borrowed unit (nested inside a
// caller's transaction) never commits or rolls back the underlying tx, which
// lets a single-item operation run standalone or as one step of a batch
// without double-committing.
type UnitOfWork interface {
	// DB returns the transaction-bound query surface.
	DB() DBTX

	// Owns reports whether this unit controls commit/rollback.
	Owns() bool

	// Commit commits the transaction if this unit owns it; no-op otherwise.
	Commit(ctx context.Context) error

	// Rollback rolls back if this unit owns the transaction and it has not
	// already been committed; safe to defer on every path.
	Rollback(ctx context.Context) error
}

// UnitOfWorkManager starts units of work.
type UnitOfWorkManager interface {
	// Begin opens a new transaction-owning unit when outer is nil, or wraps
	// outer in a borrowed unit otherwise.
	Begin(ctx context.Context, outer UnitOfWork) (UnitOfWork, error)
}
