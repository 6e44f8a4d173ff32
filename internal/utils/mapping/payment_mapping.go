package mapping

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:          d.PaymentID,
		WorkerID:           d.WorkerID,
		GrossPay:           d.GrossPay,
		NetPay:             d.NetPay,
		TotalDebtDeduction: d.TotalDebtDeduction,
		OtherDeductions:    d.OtherDeductions,
		PaymentDate:        d.PaymentDate,
		Status:             string(d.Status),
		PaymentMethod:      d.PaymentMethod,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:          m.PaymentID,
		WorkerID:           m.WorkerID,
		GrossPay:           m.GrossPay,
		NetPay:             m.NetPay,
		TotalDebtDeduction: m.TotalDebtDeduction,
		OtherDeductions:    m.OtherDeductions,
		PaymentDate:        m.PaymentDate,
		Status:             domain.PaymentStatus(m.Status),
		PaymentMethod:      m.PaymentMethod,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
