// Package ledgermath holds the pure arithmetic shared by the ledger and
// performance services so the division guards live in exactly one place.
package ledgermath

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// WeightedAverageInterestRate returns the principal-weighted mean interest
// rate over interest-bearing debts (rate > 0), as a percentage. It is 0 when
// no interest-bearing debt exists.
func WeightedAverageInterestRate(debts []domain.Debt) float64 {
	weightedSum := decimal.Zero
	principalSum := decimal.Zero
	for _, d := range debts {
		if d.InterestRate.IsPositive() {
			weightedSum = weightedSum.Add(d.Amount.Mul(d.InterestRate))
			principalSum = principalSum.Add(d.Amount)
		}
	}
	if principalSum.IsZero() {
		return 0
	}
	rate, _ := weightedSum.Div(principalSum).Float64()
	return rate
}

// DebtToIncomeRatio returns totalDebtBalance / totalNetPay * 100, or 0 when
// there is no income to divide by.
func DebtToIncomeRatio(totalDebtBalance, totalNetPay decimal.Decimal) float64 {
	if !totalNetPay.IsPositive() {
		return 0
	}
	ratio, _ := totalDebtBalance.Div(totalNetPay).Mul(hundred).Float64()
	return ratio
}

// PaymentCoverage returns totalPaid / totalDebtBalance * 100. No debt means
// full coverage by definition, so the guard returns 100.
func PaymentCoverage(totalPaid, totalDebtBalance decimal.Decimal) float64 {
	if !totalDebtBalance.IsPositive() {
		return 100
	}
	coverage, _ := totalPaid.Div(totalDebtBalance).Mul(hundred).Float64()
	return coverage
}

// PerformanceScore combines completion rate, productivity, earnings
// efficiency and assignment volume into a 0-100 score.
//
//	completionRate * 0.4 + min(productivity*2, 30) + min(efficiency*5, 20) + min(assignmentCount, 10)
func PerformanceScore(completionRate, productivity, efficiency float64, assignmentCount int) float64 {
	score := completionRate * 0.4
	score += minF(productivity*2, 30)
	score += minF(efficiency*5, 20)
	score += minF(float64(assignmentCount), 10)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Grade maps a performance score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "C+"
	case score >= 65:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// ClassifyTrend compares completion rates between periods. Differences under
// five percentage points count as stable.
func ClassifyTrend(previousCompletionRate, currentCompletionRate float64) domain.Trend {
	diff := currentCompletionRate - previousCompletionRate
	if diff < 5 && diff > -5 {
		return domain.TrendStable
	}
	if diff > 0 {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
