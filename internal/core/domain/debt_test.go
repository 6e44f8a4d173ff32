package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebt_ComputeBalance(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		interest string
		paid     string
		expected string
	}{
		{"nothing paid", "1000", "50", "0", "1050"},
		{"partially paid", "1000", "50", "400", "650"},
		{"exactly paid", "1000", "50", "1050", "0"},
		{"overpaid clamps to zero", "1000", "0", "1200", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Debt{
				Amount:        decimal.RequireFromString(tt.amount),
				TotalInterest: decimal.RequireFromString(tt.interest),
				TotalPaid:     decimal.RequireFromString(tt.paid),
			}
			assert.True(t, d.ComputeBalance().Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", d.ComputeBalance(), tt.expected)
		})
	}
}

func TestDebt_IsOverdueAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, Debt{Status: DebtPending, DueDate: &past}.IsOverdueAt(now))
	assert.True(t, Debt{Status: DebtPartiallyPaid, DueDate: &past}.IsOverdueAt(now))
	assert.False(t, Debt{Status: DebtPending, DueDate: &future}.IsOverdueAt(now))
	assert.False(t, Debt{Status: DebtPending}.IsOverdueAt(now), "no due date")
	assert.False(t, Debt{Status: DebtPaid, DueDate: &past}.IsOverdueAt(now), "resolved debt")
	assert.False(t, Debt{Status: DebtCancelled, DueDate: &past}.IsOverdueAt(now))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, WorkerOnLeave.IsValid())
	assert.False(t, WorkerStatus("fired").IsValid())
	assert.True(t, DebtPartiallyPaid.IsValid())
	assert.False(t, DebtStatus("open").IsValid())
	assert.True(t, PaymentProcessing.IsValid())
	assert.False(t, PaymentStatus("done").IsValid())
	assert.True(t, AssignmentCompleted.IsValid())
	assert.False(t, AssignmentStatus("finished").IsValid())
	assert.True(t, PeriodQuarter.IsValid())
	assert.False(t, PeriodType("fortnight").IsValid())
}
