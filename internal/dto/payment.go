package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest carries one wage payment. When the payment lands as
// completed, TotalDebtDeduction is allocated oldest-first across the worker's
// active debts in the same transaction.
type CreatePaymentRequest struct {
	WorkerID           string          `json:"workerID" validate:"required"`
	GrossPay           decimal.Decimal `json:"grossPay" validate:"required"`
	NetPay             decimal.Decimal `json:"netPay"`
	TotalDebtDeduction decimal.Decimal `json:"totalDebtDeduction"`
	OtherDeductions    decimal.Decimal `json:"otherDeductions"`
	PaymentDate        string          `json:"paymentDate" validate:"required"` // ISO-8601 date
	Status             string          `json:"status" validate:"required,oneof=pending processing completed cancelled partially_paid"`
	PaymentMethod      string          `json:"paymentMethod" validate:"required"`
}
