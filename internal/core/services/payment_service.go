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
)

type paymentService struct {
	BaseService
	uowMgr     portsrepo.UnitOfWorkManager
	repo       portsrepo.PaymentRepositoryFacade
	debtRepo   portsrepo.DebtRepositoryFacade
	workerRepo portsrepo.WorkerRepositoryFacade
	activity   portssvc.ActivitySvcFacade
	pipeline   *ValidationPipeline
}

// NewPaymentService creates the payment service.
func NewPaymentService(uowMgr portsrepo.UnitOfWorkManager, repo portsrepo.PaymentRepositoryFacade, debtRepo portsrepo.DebtRepositoryFacade, workerRepo portsrepo.WorkerRepositoryFacade, activity portssvc.ActivitySvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		uowMgr:     uowMgr,
		repo:       repo,
		debtRepo:   debtRepo,
		workerRepo: workerRepo,
		activity:   activity,
		pipeline:   NewValidationPipeline(),
	}
}

// CreatePayment records a wage payment. When the payment is completed, its
// debt deduction is allocated oldest-first across the worker's active debts
// inside the same transaction, so the payment row and the debt updates commit
// or roll back as one.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if res := s.pipeline.ValidatePaymentInput(req); !res.Valid {
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
	paymentDate, _ := csvutil.ParseDate(req.PaymentDate) // Validated upstream
	payment := domain.Payment{
		PaymentID:          uuid.NewString(),
		WorkerID:           req.WorkerID,
		GrossPay:           req.GrossPay,
		NetPay:             req.NetPay,
		TotalDebtDeduction: req.TotalDebtDeduction,
		OtherDeductions:    req.OtherDeductions,
		PaymentDate:        paymentDate,
		Status:             domain.PaymentStatus(req.Status),
		PaymentMethod:      req.PaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SavePayment(ctx, uow, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment")
		return nil, err
	}

	if payment.Status == domain.PaymentCompleted && payment.TotalDebtDeduction.IsPositive() {
		if err := s.allocateDeduction(ctx, uow, payment, creatorUserID); err != nil {
			return nil, err
		}
	}

	details := map[string]any{"paymentID": payment.PaymentID, "workerID": payment.WorkerID, "netPay": payment.NetPay}
	if err := s.activity.Record(ctx, uow, creatorUserID, "payment.create", "recorded payment for worker "+payment.WorkerID, details); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payment created", slog.String("payment_id", payment.PaymentID), slog.String("worker_id", payment.WorkerID))
	return &payment, nil
}

// allocateDeduction walks the worker's active debts oldest first, paying each
// down until the deduction runs out. A debt whose balance reaches zero is
// marked paid; a partially covered one becomes partially_paid.
func (s *paymentService) allocateDeduction(ctx context.Context, uow portsrepo.UnitOfWork, payment domain.Payment, updaterUserID string) error {
	debts, err := s.debtRepo.FindDebtsByWorkerID(ctx, uow, payment.WorkerID, true)
	if err != nil {
		return fmt.Errorf("failed to load active debts for allocation: %w", err)
	}

	remaining := payment.TotalDebtDeduction
	now := time.Now()
	for i := range debts {
		if !remaining.IsPositive() {
			break
		}
		debt := debts[i]
		balance := debt.ComputeBalance()
		if !balance.IsPositive() {
			continue
		}

		applied := remaining
		if applied.GreaterThan(balance) {
			applied = balance
		}

		debt.TotalPaid = debt.TotalPaid.Add(applied)
		debt.Balance = debt.ComputeBalance()
		if debt.Balance.IsZero() {
			debt.Status = domain.DebtPaid
		} else {
			debt.Status = domain.DebtPartiallyPaid
		}
		debt.LastUpdatedAt = now
		debt.LastUpdatedBy = updaterUserID

		if err := s.debtRepo.UpdateDebt(ctx, uow, debt); err != nil {
			return fmt.Errorf("failed to apply deduction to debt %s: %w", debt.DebtID, err)
		}
		remaining = remaining.Sub(applied)
	}

	if remaining.IsPositive() {
		s.LogWarn(ctx, "debt deduction exceeds outstanding debt",
			slog.String("payment_id", payment.PaymentID),
			slog.String("unallocated", remaining.String()))
	}
	return nil
}

// GetPaymentByID retrieves one payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.repo.FindPaymentByID(ctx, nil, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payment " + paymentID + " not found")
		}
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPaymentsByWorker retrieves all payments for a worker, newest first.
func (s *paymentService) ListPaymentsByWorker(ctx context.Context, workerID string) ([]domain.Payment, error) {
	payments, err := s.repo.FindPaymentsByWorkerID(ctx, nil, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for worker %s: %w", workerID, err)
	}
	return payments, nil
}
