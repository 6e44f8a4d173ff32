package mapping

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt.
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:         d.DebtID,
		WorkerID:       d.WorkerID,
		OriginalAmount: d.OriginalAmount,
		Amount:         d.Amount,
		TotalInterest:  d.TotalInterest,
		InterestRate:   d.InterestRate,
		TotalPaid:      d.TotalPaid,
		Balance:        d.Balance,
		Status:         string(d.Status),
		DateIncurred:   d.DateIncurred,
		DueDate:        d.DueDate,
		Reason:         d.Reason,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt.
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:         m.DebtID,
		WorkerID:       m.WorkerID,
		OriginalAmount: m.OriginalAmount,
		Amount:         m.Amount,
		TotalInterest:  m.TotalInterest,
		InterestRate:   m.InterestRate,
		TotalPaid:      m.TotalPaid,
		Balance:        m.Balance,
		Status:         domain.DebtStatus(m.Status),
		DateIncurred:   m.DateIncurred,
		DueDate:        m.DueDate,
		Reason:         m.Reason,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtSlice converts a slice of model Debts to domain Debts.
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
