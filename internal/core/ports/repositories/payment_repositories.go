package repositories

import (
	"context"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// PaymentRepositoryFacade defines persistence operations for payments.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, uow UnitOfWork, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, uow UnitOfWork, paymentID string) (*domain.Payment, error)
	FindPaymentsByWorkerID(ctx context.Context, uow UnitOfWork, workerID string) ([]domain.Payment, error)
	// FindPaymentsByWorkerInRange returns payments with paymentDate in the
	// half-open interval [start, end).
	FindPaymentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Payment, error)
}
