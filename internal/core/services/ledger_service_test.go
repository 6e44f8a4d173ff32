package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo  *MockWorkerRepository
	mockDebtRepo    *MockDebtRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockWorkerRepo.FindWorkerByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Worker, error) {
		return &domain.Worker{WorkerID: id, Name: "Ana", Status: domain.WorkerActive}, nil
	}
	suite.service = services.NewLedgerService(suite.mockWorkerRepo, suite.mockDebtRepo, suite.mockPaymentRepo)
}

func activeDebt(amount, rate int64) domain.Debt {
	amt := decimal.NewFromInt(amount)
	return domain.Debt{
		Amount:       amt,
		InterestRate: decimal.NewFromInt(rate),
		Status:       domain.DebtPending,
	}
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_Scenario() {
	ctx := context.Background()

	// Active debts whose balances sum to 1000.
	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{
			{Amount: decimal.NewFromInt(700), Status: domain.DebtPending},
			{Amount: decimal.NewFromInt(300), Status: domain.DebtPartiallyPaid},
			{Amount: decimal.NewFromInt(9999), Status: domain.DebtCancelled}, // Inactive, ignored
		}, nil
	}
	suite.mockPaymentRepo.FindPaymentsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string) ([]domain.Payment, error) {
		return []domain.Payment{
			{TotalDebtDeduction: decimal.NewFromInt(250), NetPay: decimal.NewFromInt(2000)},
			{TotalDebtDeduction: decimal.NewFromInt(150), NetPay: decimal.NewFromInt(1000)},
		}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalDebtBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalPaidViaPayments.Equal(decimal.NewFromInt(400)))
	suite.True(summary.CurrentBalance.Equal(decimal.NewFromInt(600)))
	suite.True(summary.TotalNetPay.Equal(decimal.NewFromInt(3000)))
	suite.True(summary.AverageNetPay.Equal(decimal.NewFromInt(1500)))
	suite.Equal(2, summary.ActiveDebtCount)
	suite.Equal(1, summary.DebtsByStatus[domain.DebtCancelled])
	suite.InDelta(1000.0/3000.0*100, summary.DebtToIncomeRatio, 0.0001)
	suite.InDelta(40.0, summary.PaymentCoverage, 0.0001)
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_WeightedInterest() {
	ctx := context.Background()

	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{activeDebt(1000, 5), activeDebt(3000, 10)}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.InDelta(8.75, summary.AverageInterestRate, 0.0001)
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_NoDebtGuards() {
	ctx := context.Background()

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalDebtBalance.IsZero())
	suite.Equal(0.0, summary.AverageInterestRate)
	suite.Equal(0.0, summary.DebtToIncomeRatio)
	// No debt means fully covered by definition.
	suite.Equal(100.0, summary.PaymentCoverage)

	suite.Require().NotEmpty(summary.Recommendations)
	suite.Equal(domain.RecommendationPositive, summary.Recommendations[0].Level)
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_OverdueOnRead() {
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -10)
	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{
			{Amount: decimal.NewFromInt(100), Status: domain.DebtPending, DueDate: &past},
		}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.Equal(1, summary.OverdueDebtCount)
	// The persisted status is untouched; overdue is derived.
	suite.Equal(1, summary.DebtsByStatus[domain.DebtPending])
	suite.Equal(0, summary.DebtsByStatus[domain.DebtOverdue])
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_Recommendations() {
	ctx := context.Background()

	// Balance 5000 against average net pay 1000: high load and critical.
	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{{Amount: decimal.NewFromInt(7000), Status: domain.DebtPending}}, nil
	}
	suite.mockPaymentRepo.FindPaymentsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string) ([]domain.Payment, error) {
		return []domain.Payment{
			{TotalDebtDeduction: decimal.NewFromInt(2000), NetPay: decimal.NewFromInt(1000)},
		}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.Require().Len(summary.Recommendations, 2)
	suite.Equal(domain.RecommendationWarning, summary.Recommendations[0].Level)
	suite.Equal(domain.RecommendationCritical, summary.Recommendations[1].Level)
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_DebtWithoutPayments() {
	ctx := context.Background()

	// No payment history: average net pay is zero, so both thresholds are
	// zero and any active debt trips the warning and critical rules.
	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{{Amount: decimal.NewFromInt(500), Status: domain.DebtPending}}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.True(summary.AverageNetPay.IsZero())
	suite.Require().Len(summary.Recommendations, 2)
	suite.Equal(domain.RecommendationWarning, summary.Recommendations[0].Level)
	suite.Equal(domain.RecommendationCritical, summary.Recommendations[1].Level)
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_SuggestedPayment() {
	ctx := context.Background()

	suite.mockDebtRepo.FindDebtsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string, _ bool) ([]domain.Debt, error) {
		return []domain.Debt{{Amount: decimal.NewFromInt(2000), Status: domain.DebtPending}}, nil
	}
	suite.mockPaymentRepo.FindPaymentsByWorkerIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string) ([]domain.Payment, error) {
		return []domain.Payment{
			{TotalDebtDeduction: decimal.NewFromInt(500), NetPay: decimal.NewFromInt(1000)},
		}, nil
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-1")

	suite.Require().NoError(err)
	suite.Require().Len(summary.Recommendations, 1)
	rec := summary.Recommendations[0]
	suite.Equal(domain.RecommendationAdvice, rec.Level)
	suite.Require().NotNil(rec.SuggestedMonthlyPayment)
	// min(1500 * 0.10, 1000 * 0.30) = 150
	suite.True(rec.SuggestedMonthlyPayment.Equal(decimal.NewFromInt(150)))
}

func (suite *LedgerServiceTestSuite) TestComputeWorkerBalance_WorkerNotFound() {
	ctx := context.Background()
	suite.mockWorkerRepo.FindWorkerByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string) (*domain.Worker, error) {
		return nil, apperrors.ErrNotFound
	}

	summary, err := suite.service.ComputeWorkerBalance(ctx, "w-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
