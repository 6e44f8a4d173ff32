package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentStatus indicates the state of a plot assignment.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// IsValid reports whether the status is one of the allowed values.
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentActive, AssignmentCompleted, AssignmentCancelled:
		return true
	}
	return false
}

// Assignment represents work performed by a worker against a pitak (a
// subdivided plot within a bukid). LuwangCount is the yield unit used as the
// productivity denominator.
type Assignment struct {
	AssignmentID   string           `json:"assignmentID"` // Primary Key (UUID)
	WorkerID       string           `json:"workerID"`     // FK -> Worker.workerID
	PitakID        string           `json:"pitakID"`      // FK -> plot
	LuwangCount    decimal.Decimal  `json:"luwangCount"`
	Status         AssignmentStatus `json:"status"`
	AssignmentDate time.Time        `json:"assignmentDate"`
	AuditFields
}
