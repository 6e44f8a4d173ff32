package pgsql

import (
	"context"
	"errors"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories,
// including starting units of work.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ensure BaseRepository can serve as the unit-of-work manager.
var _ portsrepo.UnitOfWorkManager = (*BaseRepository)(nil)

// ownedUnit controls a transaction it opened itself.
type ownedUnit struct {
	tx pgx.Tx
}

func (u *ownedUnit) DB() portsrepo.DBTX { return u.tx }
func (u *ownedUnit) Owns() bool         { return true }

func (u *ownedUnit) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

func (u *ownedUnit) Rollback(ctx context.Context) error {
	// Rollback after a successful commit is expected from deferred calls.
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// borrowedUnit runs inside a transaction owned by an outer operation; its
// commit and rollback are no-ops so nesting cannot double-commit.
type borrowedUnit struct {
	db portsrepo.DBTX
}

func (u *borrowedUnit) DB() portsrepo.DBTX             { return u.db }
func (u *borrowedUnit) Owns() bool                     { return false }
func (u *borrowedUnit) Commit(context.Context) error   { return nil }
func (u *borrowedUnit) Rollback(context.Context) error { return nil }

// Begin opens a transaction-owning unit of work, or wraps outer in a
// borrowed unit when the caller already holds one. Ownership is decided here
// exactly once and never re-evaluated.
func (r *BaseRepository) Begin(ctx context.Context, outer portsrepo.UnitOfWork) (portsrepo.UnitOfWork, error) {
	if outer != nil {
		return &borrowedUnit{db: outer.DB()}, nil
	}
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return &ownedUnit{tx: tx}, nil
}

// db resolves the query surface: the unit of work's transaction when one is
// supplied, the shared pool otherwise.
func (r *BaseRepository) db(uow portsrepo.UnitOfWork) portsrepo.DBTX {
	if uow != nil {
		return uow.DB()
	}
	return r.Pool
}
