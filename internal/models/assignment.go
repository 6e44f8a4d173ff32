package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment represents a row in the assignments table.
type Assignment struct {
	AssignmentID   string          `db:"assignment_id"`
	WorkerID       string          `db:"worker_id"`
	PitakID        string          `db:"pitak_id"`
	LuwangCount    decimal.Decimal `db:"luwang_count"`
	Status         string          `db:"status"`
	AssignmentDate time.Time       `db:"assignment_date"`
	AuditFields
}
