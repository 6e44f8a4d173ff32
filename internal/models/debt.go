package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt represents a row in the debts table.
type Debt struct {
	DebtID         string          `db:"debt_id"`
	WorkerID       string          `db:"worker_id"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	Amount         decimal.Decimal `db:"amount"`
	TotalInterest  decimal.Decimal `db:"total_interest"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	TotalPaid      decimal.Decimal `db:"total_paid"`
	Balance        decimal.Decimal `db:"balance"`
	Status         string          `db:"status"`
	DateIncurred   time.Time       `db:"date_incurred"`
	DueDate        *time.Time      `db:"due_date"`
	Reason         string          `db:"reason"`
	AuditFields
}
