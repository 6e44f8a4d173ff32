package repositories

import (
	"context"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// WorkerExportFilter narrows the worker set for CSV export.
type WorkerExportFilter struct {
	WorkerIDs []string
	Status    *domain.WorkerStatus
	HiredFrom *time.Time
	HiredTo   *time.Time // Inclusive
}

// WorkerRepositoryFacade defines persistence operations for workers. Methods
// taking a UnitOfWork run against that transaction when it is non-nil so
// later batch items observe earlier items' effects; passing nil reads
// committed state.
type WorkerRepositoryFacade interface {
	SaveWorker(ctx context.Context, uow UnitOfWork, worker domain.Worker) error
	FindWorkerByID(ctx context.Context, uow UnitOfWork, workerID string) (*domain.Worker, error)
	// FindWorkersByEmails resolves all given emails in a single query and
	// returns the matches keyed by email.
	FindWorkersByEmails(ctx context.Context, uow UnitOfWork, emails []string) (map[string]domain.Worker, error)
	FindWorkerByEmail(ctx context.Context, uow UnitOfWork, email string) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, uow UnitOfWork, worker domain.Worker) error
	ListWorkers(ctx context.Context, limit int, nextToken *string, status *domain.WorkerStatus) ([]domain.Worker, *string, error)
	ListWorkersForExport(ctx context.Context, filter WorkerExportFilter) ([]domain.Worker, error)
}
