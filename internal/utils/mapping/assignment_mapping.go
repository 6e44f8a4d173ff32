package mapping

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/models"
)

// ToModelAssignment converts a domain Assignment to a model Assignment.
func ToModelAssignment(d domain.Assignment) models.Assignment {
	return models.Assignment{
		AssignmentID:   d.AssignmentID,
		WorkerID:       d.WorkerID,
		PitakID:        d.PitakID,
		LuwangCount:    d.LuwangCount,
		Status:         string(d.Status),
		AssignmentDate: d.AssignmentDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignment converts a model Assignment to a domain Assignment.
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	return domain.Assignment{
		AssignmentID:   m.AssignmentID,
		WorkerID:       m.WorkerID,
		PitakID:        m.PitakID,
		LuwangCount:    m.LuwangCount,
		Status:         domain.AssignmentStatus(m.Status),
		AssignmentDate: m.AssignmentDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssignmentSlice converts a slice of model Assignments to domain Assignments.
func ToDomainAssignmentSlice(ms []models.Assignment) []domain.Assignment {
	ds := make([]domain.Assignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignment(m)
	}
	return ds
}
