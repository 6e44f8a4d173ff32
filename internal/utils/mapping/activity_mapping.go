package mapping

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/models"
)

// ToModelActivityLogEntry converts a domain ActivityLogEntry to a model row.
func ToModelActivityLogEntry(d domain.ActivityLogEntry) models.ActivityLogEntry {
	return models.ActivityLogEntry{
		EntryID:     d.EntryID,
		ActorID:     d.ActorID,
		Action:      d.Action,
		Description: d.Description,
		Details:     d.Details,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainActivityLogEntry converts a model row to a domain ActivityLogEntry.
func ToDomainActivityLogEntry(m models.ActivityLogEntry) domain.ActivityLogEntry {
	return domain.ActivityLogEntry{
		EntryID:     m.EntryID,
		ActorID:     m.ActorID,
		Action:      m.Action,
		Description: m.Description,
		Details:     m.Details,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainActivityLogEntrySlice converts model rows to domain entries.
func ToDomainActivityLogEntrySlice(ms []models.ActivityLogEntry) []domain.ActivityLogEntry {
	ds := make([]domain.ActivityLogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActivityLogEntry(m)
	}
	return ds
}
