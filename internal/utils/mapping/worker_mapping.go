package mapping

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/models"
)

// ToModelWorker converts a domain Worker to a model Worker.
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:    d.WorkerID,
		Name:        d.Name,
		Contact:     d.Contact,
		Email:       d.Email,
		Address:     d.Address,
		Status:      string(d.Status),
		HireDate:    d.HireDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorker converts a model Worker to a domain Worker.
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:    m.WorkerID,
		Name:        m.Name,
		Contact:     m.Contact,
		Email:       m.Email,
		Address:     m.Address,
		Status:      domain.WorkerStatus(m.Status),
		HireDate:    m.HireDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkerSlice converts a slice of model Workers to domain Workers.
func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}
