package pgsql

import (
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool. The worker repository doubles as the unit-of-work manager
// since BaseRepository carries that behavior.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	workerRepo := newPgxWorkerRepository(pool)

	return &portsrepo.RepositoryProvider{
		UoWManager:     workerRepo,
		WorkerRepo:     workerRepo,
		DebtRepo:       newPgxDebtRepository(pool),
		PaymentRepo:    newPgxPaymentRepository(pool),
		AssignmentRepo: newPgxAssignmentRepository(pool),
		ActivityRepo:   newPgxActivityRepository(pool),
	}
}
