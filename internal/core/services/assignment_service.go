package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/utils/csvutil"
	"github.com/google/uuid"
)

type assignmentService struct {
	BaseService
	uowMgr     portsrepo.UnitOfWorkManager
	repo       portsrepo.AssignmentRepositoryFacade
	workerRepo portsrepo.WorkerRepositoryFacade
	activity   portssvc.ActivitySvcFacade
	pipeline   *ValidationPipeline
}

// NewAssignmentService creates the assignment service.
func NewAssignmentService(uowMgr portsrepo.UnitOfWorkManager, repo portsrepo.AssignmentRepositoryFacade, workerRepo portsrepo.WorkerRepositoryFacade, activity portssvc.ActivitySvcFacade) portssvc.AssignmentSvcFacade {
	return &assignmentService{
		uowMgr:     uowMgr,
		repo:       repo,
		workerRepo: workerRepo,
		activity:   activity,
		pipeline:   NewValidationPipeline(),
	}
}

// CreateAssignment assigns a worker to a pitak.
func (s *assignmentService) CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest, creatorUserID string) (*domain.Assignment, error) {
	if res := s.pipeline.ValidateAssignmentInput(req); !res.Valid {
		return nil, apperrors.NewAppError(400, res.Reason(), apperrors.ErrValidation)
	}

	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	if _, err := s.workerRepo.FindWorkerByID(ctx, uow, req.WorkerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker " + req.WorkerID + " not found")
		}
		return nil, err
	}

	now := time.Now()
	assignmentDate, _ := csvutil.ParseDate(req.AssignmentDate) // Validated upstream
	assignment := domain.Assignment{
		AssignmentID:   uuid.NewString(),
		WorkerID:       req.WorkerID,
		PitakID:        req.PitakID,
		LuwangCount:    req.LuwangCount,
		Status:         domain.AssignmentActive,
		AssignmentDate: assignmentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveAssignment(ctx, uow, assignment); err != nil {
		s.LogError(ctx, err, "failed to save assignment")
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAssignmentByID retrieves one assignment.
func (s *assignmentService) GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	assignment, err := s.repo.FindAssignmentByID(ctx, nil, assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("assignment " + assignmentID + " not found")
		}
		return nil, fmt.Errorf("failed to get assignment %s: %w", assignmentID, err)
	}
	return assignment, nil
}

// ListAssignmentsByWorker retrieves a worker's assignments, newest first.
func (s *assignmentService) ListAssignmentsByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	assignments, err := s.repo.FindAssignmentsByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for worker %s: %w", workerID, err)
	}
	return assignments, nil
}

// CompleteAssignment closes an active assignment and records the final yield.
func (s *assignmentService) CompleteAssignment(ctx context.Context, assignmentID string, req dto.CompleteAssignmentRequest, updaterUserID string) (*domain.Assignment, error) {
	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	assignment, err := s.repo.FindAssignmentByID(ctx, uow, assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("assignment " + assignmentID + " not found")
		}
		return nil, err
	}
	if assignment.Status != domain.AssignmentActive {
		return nil, apperrors.NewAppError(409, "only an active assignment can be completed", apperrors.ErrConflict)
	}
	if req.LuwangCount != nil {
		if req.LuwangCount.IsNegative() {
			return nil, apperrors.NewAppError(400, "luwangCount cannot be negative", apperrors.ErrValidation)
		}
		assignment.LuwangCount = *req.LuwangCount
	}

	assignment.Status = domain.AssignmentCompleted
	assignment.LastUpdatedAt = time.Now()
	assignment.LastUpdatedBy = updaterUserID
	if err := s.repo.UpdateAssignment(ctx, uow, *assignment); err != nil {
		return nil, err
	}

	details := map[string]any{"assignmentID": assignmentID, "luwangCount": assignment.LuwangCount}
	if err := s.activity.Record(ctx, uow, updaterUserID, "assignment.complete", "completed assignment "+assignmentID, details); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return assignment, nil
}

// CancelAssignment closes an assignment without recording yield.
func (s *assignmentService) CancelAssignment(ctx context.Context, assignmentID string, updaterUserID string) (*domain.Assignment, error) {
	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	assignment, err := s.repo.FindAssignmentByID(ctx, uow, assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("assignment " + assignmentID + " not found")
		}
		return nil, err
	}
	if assignment.Status != domain.AssignmentActive {
		return nil, apperrors.NewAppError(409, "only an active assignment can be cancelled", apperrors.ErrConflict)
	}

	assignment.Status = domain.AssignmentCancelled
	assignment.LastUpdatedAt = time.Now()
	assignment.LastUpdatedBy = updaterUserID
	if err := s.repo.UpdateAssignment(ctx, uow, *assignment); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return assignment, nil
}
