package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// LedgerSvcFacade derives a worker's financial state from the debt and
// payment ledgers. Nothing here writes.
type LedgerSvcFacade interface {
	ComputeWorkerBalance(ctx context.Context, workerID string) (*domain.LedgerSummary, error)
}
