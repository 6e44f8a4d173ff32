package repositories

import (
	"context"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// AssignmentRepositoryFacade defines persistence operations for assignments.
type AssignmentRepositoryFacade interface {
	SaveAssignment(ctx context.Context, uow UnitOfWork, assignment domain.Assignment) error
	FindAssignmentByID(ctx context.Context, uow UnitOfWork, assignmentID string) (*domain.Assignment, error)
	UpdateAssignment(ctx context.Context, uow UnitOfWork, assignment domain.Assignment) error
	FindAssignmentsByWorkerID(ctx context.Context, workerID string) ([]domain.Assignment, error)
	// FindAssignmentsByWorkerInRange returns assignments with assignmentDate
	// in the half-open interval [start, end).
	FindAssignmentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Assignment, error)
}
