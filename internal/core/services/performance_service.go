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
	"github.com/bukidworks/farm_ledger_app/internal/utils/ledgermath"
	"github.com/bukidworks/farm_ledger_app/internal/utils/period"
	"github.com/shopspring/decimal"
)

type performanceService struct {
	BaseService
	workerRepo     portsrepo.WorkerRepositoryFacade
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	paymentRepo    portsrepo.PaymentRepositoryFacade
	now            func() time.Time
}

// NewPerformanceService creates the period comparator.
func NewPerformanceService(workerRepo portsrepo.WorkerRepositoryFacade, assignmentRepo portsrepo.AssignmentRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PerformanceSvcFacade {
	return &performanceService{
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		paymentRepo:    paymentRepo,
		now:            time.Now,
	}
}

// GetWorkerPerformance computes calendar-aligned period metrics for a worker
// and, when requested, the comparison against the immediately preceding
// period of the same type.
func (s *performanceService) GetWorkerPerformance(ctx context.Context, workerID string, periodType domain.PeriodType, compareToPrevious bool) (*domain.PerformanceReport, error) {
	if !periodType.IsValid() {
		return nil, apperrors.NewAppError(400, "invalid period type", apperrors.ErrValidation)
	}
	if _, err := s.workerRepo.FindWorkerByID(ctx, nil, workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
		}
		return nil, fmt.Errorf("failed to load worker %s: %w", workerID, err)
	}

	currentRange := period.CurrentRange(periodType, s.now())
	current, err := s.computePeriodMetrics(ctx, workerID, currentRange)
	if err != nil {
		return nil, err
	}

	report := &domain.PerformanceReport{
		WorkerID:   workerID,
		PeriodType: periodType,
		Current:    *current,
		Score:      ledgermath.PerformanceScore(current.CompletionRate, current.Productivity, current.EarningsEfficiency, current.AssignmentCount),
	}
	report.Grade = ledgermath.Grade(report.Score)

	if compareToPrevious {
		previousRange := period.PreviousRange(periodType, currentRange)
		previous, err := s.computePeriodMetrics(ctx, workerID, previousRange)
		if err != nil {
			return nil, err
		}
		report.Previous = previous
		report.Comparison = &domain.PeriodComparison{
			CompletionRateChange: period.PercentageChange(previous.CompletionRate, current.CompletionRate),
			ProductivityChange:   period.PercentageChange(previous.Productivity, current.Productivity),
			EfficiencyChange:     period.PercentageChange(previous.EarningsEfficiency, current.EarningsEfficiency),
			NetPayChange:         period.PercentageChange(previous.TotalNetPay.InexactFloat64(), current.TotalNetPay.InexactFloat64()),
			Trend:                ledgermath.ClassifyTrend(previous.CompletionRate, current.CompletionRate),
		}
	}

	report.Recommendations = buildPerformanceRecommendations(report)
	return report, nil
}

// computePeriodMetrics fetches the rows for one period and derives its
// figures. Divisions fall back to zero instead of failing.
func (s *performanceService) computePeriodMetrics(ctx context.Context, workerID string, r period.Range) (*domain.PeriodMetrics, error) {
	assignments, err := s.assignmentRepo.FindAssignmentsByWorkerInRange(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments in period: %w", err)
	}
	payments, err := s.paymentRepo.FindPaymentsByWorkerInRange(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments in period: %w", err)
	}

	metrics := &domain.PeriodMetrics{
		Start:           r.Start,
		End:             r.End,
		AssignmentCount: len(assignments),
	}
	for _, a := range assignments {
		if a.Status == domain.AssignmentCompleted {
			metrics.CompletedCount++
		}
		metrics.TotalLuwang = metrics.TotalLuwang.Add(a.LuwangCount)
	}
	for _, p := range payments {
		metrics.TotalNetPay = metrics.TotalNetPay.Add(p.NetPay)
	}

	if metrics.AssignmentCount > 0 {
		metrics.CompletionRate = float64(metrics.CompletedCount) / float64(metrics.AssignmentCount) * 100
		metrics.Productivity, _ = metrics.TotalLuwang.Div(decimal.NewFromInt(int64(metrics.AssignmentCount))).Float64()
	}
	if metrics.TotalLuwang.IsPositive() {
		metrics.EarningsEfficiency, _ = metrics.TotalNetPay.Div(metrics.TotalLuwang).Float64()
	}

	return metrics, nil
}

func buildPerformanceRecommendations(report *domain.PerformanceReport) []string {
	recommendations := []string{}

	if report.Current.AssignmentCount == 0 {
		recommendations = append(recommendations, "no assignments recorded in this period; verify the worker is being assigned work")
		return recommendations
	}
	if report.Current.CompletionRate < 50 {
		recommendations = append(recommendations, "completion rate is below half; review open assignments with the worker")
	}
	if report.Comparison != nil && report.Comparison.Trend == domain.TrendDeclining {
		recommendations = append(recommendations, "performance is declining against the previous period")
	}
	if report.Score >= 85 {
		recommendations = append(recommendations, "strong performance this period")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "performance is steady; no action needed")
	}
	return recommendations
}
