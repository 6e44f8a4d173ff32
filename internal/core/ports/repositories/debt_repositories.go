package repositories

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// DebtRepositoryFacade defines persistence operations for debts.
type DebtRepositoryFacade interface {
	SaveDebt(ctx context.Context, uow UnitOfWork, debt domain.Debt) error
	FindDebtByID(ctx context.Context, uow UnitOfWork, debtID string) (*domain.Debt, error)
	// FindDebtsByWorkerID returns the worker's debts ordered by dateIncurred
	// ascending. activeOnly limits to pending and partially_paid.
	FindDebtsByWorkerID(ctx context.Context, uow UnitOfWork, workerID string, activeOnly bool) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, uow UnitOfWork, debt domain.Debt) error
}
