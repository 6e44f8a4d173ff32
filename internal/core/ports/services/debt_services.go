package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

// DebtSvcFacade defines debt operations.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, creatorUserID string) (*domain.Debt, error)
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebtsByWorker(ctx context.Context, workerID string, params dto.ListDebtsParams) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, debtID string, patch dto.DebtPatch, updaterUserID string) (*domain.Debt, error)
	CancelDebt(ctx context.Context, debtID string, updaterUserID string) (*domain.Debt, error)
}
