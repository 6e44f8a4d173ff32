package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecommendationLevel classifies a ledger recommendation.
type RecommendationLevel string

const (
	RecommendationWarning  RecommendationLevel = "warning"
	RecommendationCritical RecommendationLevel = "critical"
	RecommendationAdvice   RecommendationLevel = "advice"
	RecommendationPositive RecommendationLevel = "positive"
)

// Recommendation is a single actionable finding derived from a worker's ledger.
type Recommendation struct {
	Level   RecommendationLevel `json:"level"`
	Message string              `json:"message"`
	// SuggestedMonthlyPayment is set only on the suggested-payment advice.
	SuggestedMonthlyPayment *decimal.Decimal `json:"suggestedMonthlyPayment,omitempty"`
}

// LedgerSummary is the derived financial state of a worker. Nothing in it is
// persisted; every field is recomputed from debts and payments on each read.
type LedgerSummary struct {
	WorkerID             string             `json:"workerID"`
	TotalDebtBalance     decimal.Decimal    `json:"totalDebtBalance"`
	TotalPaidViaPayments decimal.Decimal    `json:"totalPaidViaPayments"`
	CurrentBalance       decimal.Decimal    `json:"currentBalance"`
	TotalNetPay          decimal.Decimal    `json:"totalNetPay"`
	AverageNetPay        decimal.Decimal    `json:"averageNetPay"`
	AverageInterestRate  float64            `json:"averageInterestRate"` // Percentage
	DebtToIncomeRatio    float64            `json:"debtToIncomeRatio"`   // Percentage
	PaymentCoverage      float64            `json:"paymentCoverage"`     // Percentage
	ActiveDebtCount      int                `json:"activeDebtCount"`
	OverdueDebtCount     int                `json:"overdueDebtCount"`
	DebtsByStatus        map[DebtStatus]int `json:"debtsByStatus"`
	Recommendations      []Recommendation   `json:"recommendations"`
	ComputedAt           time.Time          `json:"computedAt"`
}

// PeriodType selects the calendar block used for performance comparison.
type PeriodType string

const (
	PeriodWeek    PeriodType = "week"
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

// IsValid reports whether the period type is one of the allowed values.
func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// Trend classifies the direction of a worker's performance between periods.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// PeriodMetrics holds the per-period performance figures for a worker.
type PeriodMetrics struct {
	Start              time.Time       `json:"start"`
	End                time.Time       `json:"end"` // Exclusive
	AssignmentCount    int             `json:"assignmentCount"`
	CompletedCount     int             `json:"completedCount"`
	CompletionRate     float64         `json:"completionRate"` // Percentage
	TotalLuwang        decimal.Decimal `json:"totalLuwang"`
	Productivity       float64         `json:"productivity"` // Luwang per assignment-day
	TotalNetPay        decimal.Decimal `json:"totalNetPay"`
	EarningsEfficiency float64         `json:"earningsEfficiency"` // Pay per luwang
}

// PeriodComparison holds the period-over-period percentage deltas.
type PeriodComparison struct {
	CompletionRateChange float64 `json:"completionRateChange"`
	ProductivityChange   float64 `json:"productivityChange"`
	EfficiencyChange     float64 `json:"efficiencyChange"`
	NetPayChange         float64 `json:"netPayChange"`
	Trend                Trend   `json:"trend"`
}

// PerformanceReport is the full PeriodComparator output for one worker.
type PerformanceReport struct {
	WorkerID        string            `json:"workerID"`
	PeriodType      PeriodType        `json:"periodType"`
	Current         PeriodMetrics     `json:"current"`
	Previous        *PeriodMetrics    `json:"previous,omitempty"`
	Comparison      *PeriodComparison `json:"comparison,omitempty"`
	Score           float64           `json:"score"` // 0-100
	Grade           string            `json:"grade"`
	Recommendations []string          `json:"recommendations"`
}
