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
	"github.com/shopspring/decimal"
)

var (
	three = decimal.NewFromInt(3)
	six   = decimal.NewFromInt(6)
)

type ledgerService struct {
	BaseService
	workerRepo  portsrepo.WorkerRepositoryFacade
	debtRepo    portsrepo.DebtRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewLedgerService creates the read-only ledger aggregator.
func NewLedgerService(workerRepo portsrepo.WorkerRepositoryFacade, debtRepo portsrepo.DebtRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		workerRepo:  workerRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
	}
}

// ComputeWorkerBalance derives the worker's full financial summary from the
// debt and payment ledgers. Rows are fetched first and every figure is
// computed afterwards; no transaction is held during computation.
func (s *ledgerService) ComputeWorkerBalance(ctx context.Context, workerID string) (*domain.LedgerSummary, error) {
	if _, err := s.workerRepo.FindWorkerByID(ctx, nil, workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
		}
		return nil, fmt.Errorf("failed to load worker %s: %w", workerID, err)
	}

	debts, err := s.debtRepo.FindDebtsByWorkerID(ctx, nil, workerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for worker %s: %w", workerID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByWorkerID(ctx, nil, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for worker %s: %w", workerID, err)
	}

	now := time.Now()
	summary := &domain.LedgerSummary{
		WorkerID:      workerID,
		DebtsByStatus: map[domain.DebtStatus]int{},
		ComputedAt:    now,
	}

	activeDebts := make([]domain.Debt, 0, len(debts))
	for _, d := range debts {
		summary.DebtsByStatus[d.Status]++
		if d.Status.IsActive() {
			activeDebts = append(activeDebts, d)
			summary.TotalDebtBalance = summary.TotalDebtBalance.Add(d.ComputeBalance())
			if d.IsOverdueAt(now) {
				summary.OverdueDebtCount++
			}
		}
	}
	summary.ActiveDebtCount = len(activeDebts)

	for _, p := range payments {
		summary.TotalPaidViaPayments = summary.TotalPaidViaPayments.Add(p.TotalDebtDeduction)
		summary.TotalNetPay = summary.TotalNetPay.Add(p.NetPay)
	}
	if len(payments) > 0 {
		summary.AverageNetPay = summary.TotalNetPay.Div(decimal.NewFromInt(int64(len(payments))))
	}

	summary.CurrentBalance = summary.TotalDebtBalance.Sub(summary.TotalPaidViaPayments)
	summary.AverageInterestRate = ledgermath.WeightedAverageInterestRate(activeDebts)
	summary.DebtToIncomeRatio = ledgermath.DebtToIncomeRatio(summary.TotalDebtBalance, summary.TotalNetPay)
	summary.PaymentCoverage = ledgermath.PaymentCoverage(summary.TotalPaidViaPayments, summary.TotalDebtBalance)
	summary.Recommendations = buildRecommendations(summary)

	return summary, nil
}

// buildRecommendations applies the ordered recommendation rules. All
// applicable rules emit; the suggested-payment advice fires only when neither
// threshold rule did.
func buildRecommendations(summary *domain.LedgerSummary) []domain.Recommendation {
	recommendations := []domain.Recommendation{}
	balance := summary.CurrentBalance
	avgNetPay := summary.AverageNetPay

	// With no payment history both thresholds are zero, so any outstanding
	// balance trips both rules.
	highLoad := balance.GreaterThan(avgNetPay.Mul(three))
	critical := summary.TotalDebtBalance.GreaterThan(avgNetPay.Mul(six))

	if highLoad {
		recommendations = append(recommendations, domain.Recommendation{
			Level:   domain.RecommendationWarning,
			Message: "outstanding balance exceeds three months of average net pay; debt load is high",
		})
	}
	if critical {
		recommendations = append(recommendations, domain.Recommendation{
			Level:   domain.RecommendationCritical,
			Message: "total debt exceeds six months of average net pay; consider consolidating debts",
		})
	}
	if !highLoad && !critical && balance.IsPositive() {
		suggested := decimal.Min(
			balance.Mul(decimal.NewFromFloat(0.10)),
			avgNetPay.Mul(decimal.NewFromFloat(0.30)),
		)
		recommendations = append(recommendations, domain.Recommendation{
			Level:                   domain.RecommendationAdvice,
			Message:                 "a steady monthly payment would clear the balance over time",
			SuggestedMonthlyPayment: &suggested,
		})
	}
	if !balance.IsPositive() {
		recommendations = append(recommendations, domain.Recommendation{
			Level:   domain.RecommendationPositive,
			Message: "no outstanding balance; worker is in good standing",
		})
	}

	return recommendations
}
