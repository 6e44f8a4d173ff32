package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/utils/csvutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type debtService struct {
	BaseService
	uowMgr     portsrepo.UnitOfWorkManager
	repo       portsrepo.DebtRepositoryFacade
	workerRepo portsrepo.WorkerRepositoryFacade
	activity   portssvc.ActivitySvcFacade
	pipeline   *ValidationPipeline
}

// NewDebtService creates the debt service.
func NewDebtService(uowMgr portsrepo.UnitOfWorkManager, repo portsrepo.DebtRepositoryFacade, workerRepo portsrepo.WorkerRepositoryFacade, activity portssvc.ActivitySvcFacade) portssvc.DebtSvcFacade {
	return &debtService{
		uowMgr:     uowMgr,
		repo:       repo,
		workerRepo: workerRepo,
		activity:   activity,
		pipeline:   NewValidationPipeline(),
	}
}

// CreateDebt records a new debt. Interest is simple interest fixed once at
// creation: totalInterest = amount * rate / 100. It never accrues afterwards.
func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, creatorUserID string) (*domain.Debt, error) {
	if res := s.pipeline.ValidateDebtInput(req); !res.Valid {
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
	dateIncurred, _ := csvutil.ParseDate(req.DateIncurred) // Validated upstream
	var dueDate *time.Time
	if req.DueDate != nil {
		due, _ := csvutil.ParseDate(*req.DueDate)
		dueDate = &due
	}

	totalInterest := req.Amount.Mul(req.InterestRate).Div(decimal.NewFromInt(100))
	debt := domain.Debt{
		DebtID:         uuid.NewString(),
		WorkerID:       req.WorkerID,
		OriginalAmount: req.Amount,
		Amount:         req.Amount,
		TotalInterest:  totalInterest,
		InterestRate:   req.InterestRate,
		TotalPaid:      decimal.Zero,
		Status:         domain.DebtPending,
		DateIncurred:   dateIncurred,
		DueDate:        dueDate,
		Reason:         req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	debt.Balance = debt.ComputeBalance()

	if err := s.repo.SaveDebt(ctx, uow, debt); err != nil {
		s.LogError(ctx, err, "failed to save debt")
		return nil, err
	}

	details := map[string]any{"debtID": debt.DebtID, "workerID": debt.WorkerID, "amount": debt.Amount}
	if err := s.activity.Record(ctx, uow, creatorUserID, "debt.create", "recorded debt for worker "+debt.WorkerID, details); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "debt created", slog.String("debt_id", debt.DebtID), slog.String("worker_id", debt.WorkerID))
	return &debt, nil
}

// GetDebtByID retrieves one debt.
func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	debt, err := s.repo.FindDebtByID(ctx, nil, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("debt " + debtID + " not found")
		}
		return nil, fmt.Errorf("failed to get debt %s: %w", debtID, err)
	}
	return debt, nil
}

// ListDebtsByWorker retrieves a worker's debts, oldest first.
func (s *debtService) ListDebtsByWorker(ctx context.Context, workerID string, params dto.ListDebtsParams) ([]domain.Debt, error) {
	debts, err := s.repo.FindDebtsByWorkerID(ctx, nil, workerID, params.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for worker %s: %w", workerID, err)
	}
	return debts, nil
}

// UpdateDebt applies the debt patch whitelist. Monetary fields move only
// through payment allocation and are not reachable from here.
func (s *debtService) UpdateDebt(ctx context.Context, debtID string, patch dto.DebtPatch, updaterUserID string) (*domain.Debt, error) {
	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	debt, err := s.repo.FindDebtByID(ctx, uow, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("debt " + debtID + " not found")
		}
		return nil, err
	}

	if patch.Reason != nil {
		debt.Reason = *patch.Reason
	}
	if patch.DueDate != nil {
		due, err := csvutil.ParseDate(*patch.DueDate)
		if err != nil {
			return nil, apperrors.NewAppError(400, "dueDate must be a valid date in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		debt.DueDate = &due
	}
	if patch.Status != nil {
		status := domain.DebtStatus(*patch.Status)
		if !status.IsValid() {
			return nil, apperrors.NewAppError(400, "invalid debt status", apperrors.ErrValidation)
		}
		debt.Status = status
	}
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateDebt(ctx, uow, *debt); err != nil {
		return nil, err
	}
	if err := s.activity.Record(ctx, uow, updaterUserID, "debt.update", "updated debt "+debtID, map[string]any{"debtID": debtID}); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return debt, nil
}

// CancelDebt transitions a debt to cancelled. Paid debts stay paid.
func (s *debtService) CancelDebt(ctx context.Context, debtID string, updaterUserID string) (*domain.Debt, error) {
	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	debt, err := s.repo.FindDebtByID(ctx, uow, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("debt " + debtID + " not found")
		}
		return nil, err
	}
	if debt.Status == domain.DebtPaid {
		return nil, apperrors.NewAppError(409, "a paid debt cannot be cancelled", apperrors.ErrConflict)
	}
	if debt.Status == domain.DebtCancelled {
		return nil, apperrors.NewAppError(409, "debt is already cancelled", apperrors.ErrConflict)
	}

	debt.Status = domain.DebtCancelled
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = updaterUserID
	if err := s.repo.UpdateDebt(ctx, uow, *debt); err != nil {
		return nil, err
	}

	if err := s.activity.Record(ctx, uow, updaterUserID, "debt.cancel", "cancelled debt "+debtID, map[string]any{"debtID": debtID}); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return debt, nil
}
