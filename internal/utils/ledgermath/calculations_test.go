package ledgermath

import (
	"testing"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageInterestRate(t *testing.T) {
	debts := []domain.Debt{
		{Amount: dec("1000"), InterestRate: dec("5")},
		{Amount: dec("3000"), InterestRate: dec("10")},
	}
	assert.InDelta(t, 8.75, WeightedAverageInterestRate(debts), 1e-9)
}

func TestWeightedAverageInterestRate_SkipsZeroRateDebts(t *testing.T) {
	debts := []domain.Debt{
		{Amount: dec("5000"), InterestRate: dec("0")},
		{Amount: dec("1000"), InterestRate: dec("12")},
	}
	assert.InDelta(t, 12, WeightedAverageInterestRate(debts), 1e-9)
}

func TestWeightedAverageInterestRate_NoInterestBearingDebt(t *testing.T) {
	assert.Zero(t, WeightedAverageInterestRate(nil))
	assert.Zero(t, WeightedAverageInterestRate([]domain.Debt{
		{Amount: dec("1000"), InterestRate: dec("0")},
	}))
}

func TestDebtToIncomeRatio(t *testing.T) {
	assert.InDelta(t, 50, DebtToIncomeRatio(dec("500"), dec("1000")), 1e-9)
	assert.Zero(t, DebtToIncomeRatio(dec("500"), dec("0")), "guarded division")
}

func TestPaymentCoverage(t *testing.T) {
	assert.InDelta(t, 40, PaymentCoverage(dec("400"), dec("1000")), 1e-9)
	assert.Equal(t, float64(100), PaymentCoverage(dec("0"), dec("0")), "no debt is fully covered")
}

func TestPerformanceScore_CapsAt100(t *testing.T) {
	// 100*0.4 + min(40,30) + min(50,20) + min(15,10) = 40+30+20+10 = 100
	score := PerformanceScore(100, 20, 10, 15)
	assert.Equal(t, float64(100), score)
	assert.Equal(t, "A+", Grade(score))
}

func TestPerformanceScore_Components(t *testing.T) {
	// 50*0.4 + 5*2 + 2*5 + 3 = 20 + 10 + 10 + 3 = 43
	assert.InDelta(t, 43, PerformanceScore(50, 5, 2, 3), 1e-9)
	assert.Zero(t, PerformanceScore(0, 0, 0, 0))
}

func TestGradeBoundaries(t *testing.T) {
	cases := map[float64]string{
		95: "A+", 90: "A+", 89.9: "A", 85: "A", 84: "B+", 80: "B+",
		79: "B", 75: "B", 74: "C+", 70: "C+", 69: "C", 65: "C",
		64: "D", 60: "D", 59.9: "F", 0: "F",
	}
	for score, want := range cases {
		assert.Equal(t, want, Grade(score), "score %v", score)
	}
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, domain.TrendImproving, ClassifyTrend(50, 80))
	assert.Equal(t, domain.TrendDeclining, ClassifyTrend(80, 50))
	assert.Equal(t, domain.TrendStable, ClassifyTrend(80, 82), "under 5 points is stable")
	assert.Equal(t, domain.TrendStable, ClassifyTrend(82, 80))
	assert.Equal(t, domain.TrendStable, ClassifyTrend(75, 75))
	assert.Equal(t, domain.TrendImproving, ClassifyTrend(70, 75))
}
