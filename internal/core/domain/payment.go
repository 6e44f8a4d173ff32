package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates the processing state of a payment.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentProcessing    PaymentStatus = "processing"
	PaymentCompleted     PaymentStatus = "completed"
	PaymentCancelled     PaymentStatus = "cancelled"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
)

// IsValid reports whether the status is one of the allowed values.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentCancelled, PaymentPartiallyPaid:
		return true
	}
	return false
}

// Payment represents a wage payment to a worker, including any deduction
// applied against the worker's outstanding debts.
type Payment struct {
	PaymentID          string          `json:"paymentID"` // Primary Key (UUID)
	WorkerID           string          `json:"workerID"`  // FK -> Worker.workerID
	GrossPay           decimal.Decimal `json:"grossPay"`
	NetPay             decimal.Decimal `json:"netPay"`
	TotalDebtDeduction decimal.Decimal `json:"totalDebtDeduction"`
	OtherDeductions    decimal.Decimal `json:"otherDeductions"`
	PaymentDate        time.Time       `json:"paymentDate"`
	Status             PaymentStatus   `json:"status"`
	PaymentMethod      string          `json:"paymentMethod"`
	AuditFields
}
