package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus indicates the repayment state of a debt.
type DebtStatus string

const (
	DebtPending       DebtStatus = "pending"
	DebtPartiallyPaid DebtStatus = "partially_paid"
	DebtPaid          DebtStatus = "paid"
	DebtCancelled     DebtStatus = "cancelled"
	DebtOverdue       DebtStatus = "overdue"
)

// IsValid reports whether the status is one of the allowed values.
func (s DebtStatus) IsValid() bool {
	switch s {
	case DebtPending, DebtPartiallyPaid, DebtPaid, DebtCancelled, DebtOverdue:
		return true
	}
	return false
}

// IsActive reports whether the debt still carries an outstanding balance.
func (s DebtStatus) IsActive() bool {
	return s == DebtPending || s == DebtPartiallyPaid
}

// Debt represents money owed by a worker. Rows are never hard-deleted; a
// resolved debt transitions to paid or cancelled.
type Debt struct {
	DebtID         string          `json:"debtID"`   // Primary Key (UUID)
	WorkerID       string          `json:"workerID"` // FK -> Worker.workerID
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	Amount         decimal.Decimal `json:"amount"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	InterestRate   decimal.Decimal `json:"interestRate"` // Percentage, >= 0
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	Balance        decimal.Decimal `json:"balance"` // max(0, amount + totalInterest - totalPaid)
	Status         DebtStatus      `json:"status"`
	DateIncurred   time.Time       `json:"dateIncurred"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Reason         string          `json:"reason"`
	AuditFields
}

// ComputeBalance returns amount + totalInterest - totalPaid, clamped at zero.
func (d Debt) ComputeBalance() decimal.Decimal {
	balance := d.Amount.Add(d.TotalInterest).Sub(d.TotalPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// IsOverdueAt reports whether an active debt has passed its due date.
// Overdue is derived on read; the persisted status is not rewritten.
func (d Debt) IsOverdueAt(now time.Time) bool {
	return d.Status.IsActive() && d.DueDate != nil && d.DueDate.Before(now)
}
