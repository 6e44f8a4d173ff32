package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

// AssignmentSvcFacade defines assignment operations.
type AssignmentSvcFacade interface {
	CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest, creatorUserID string) (*domain.Assignment, error)
	GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	ListAssignmentsByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error)
	CompleteAssignment(ctx context.Context, assignmentID string, req dto.CompleteAssignmentRequest, updaterUserID string) (*domain.Assignment, error)
	CancelAssignment(ctx context.Context, assignmentID string, updaterUserID string) (*domain.Assignment, error)
}
