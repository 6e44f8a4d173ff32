package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row in the payments table.
type Payment struct {
	PaymentID          string          `db:"payment_id"`
	WorkerID           string          `db:"worker_id"`
	GrossPay           decimal.Decimal `db:"gross_pay"`
	NetPay             decimal.Decimal `db:"net_pay"`
	TotalDebtDeduction decimal.Decimal `db:"total_debt_deduction"`
	OtherDeductions    decimal.Decimal `db:"other_deductions"`
	PaymentDate        time.Time       `db:"payment_date"`
	Status             string          `db:"status"`
	PaymentMethod      string          `db:"payment_method"`
	AuditFields
}
