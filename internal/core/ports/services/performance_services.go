package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// PerformanceSvcFacade computes calendar-aligned period metrics for a worker.
type PerformanceSvcFacade interface {
	GetWorkerPerformance(ctx context.Context, workerID string, periodType domain.PeriodType, compareToPrevious bool) (*domain.PerformanceReport, error)
}
