package dto

import (
	"github.com/shopspring/decimal"
)

// CreateDebtRequest carries a new debt for a worker. Interest is simple
// interest fixed at creation time.
type CreateDebtRequest struct {
	WorkerID     string          `json:"workerID" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
	DateIncurred string          `json:"dateIncurred" validate:"required"` // ISO-8601 date
	DueDate      *string         `json:"dueDate"`                          // ISO-8601 date
	Reason       string          `json:"reason" validate:"required"`
}

// DebtPatch is the whitelist of mutable debt columns. Amounts and the paid
// total are never patched directly; they move only through payment allocation.
type DebtPatch struct {
	Reason  *string `json:"reason"`
	DueDate *string `json:"dueDate"` // ISO-8601 date
	Status  *string `json:"status" validate:"omitempty,oneof=pending partially_paid paid cancelled overdue"`
}

// ListDebtsParams defines query parameters for listing a worker's debts.
type ListDebtsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}
