package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAssignmentRequest assigns a worker to a pitak.
type CreateAssignmentRequest struct {
	WorkerID       string          `json:"workerID" validate:"required"`
	PitakID        string          `json:"pitakID" validate:"required"`
	LuwangCount    decimal.Decimal `json:"luwangCount"`
	AssignmentDate string          `json:"assignmentDate" validate:"required"` // ISO-8601 date
}

// CompleteAssignmentRequest records the final yield when closing an assignment.
type CompleteAssignmentRequest struct {
	LuwangCount *decimal.Decimal `json:"luwangCount"` // Overrides the recorded yield when set
}

// PerformanceParams defines query parameters for the performance report.
type PerformanceParams struct {
	Period            string `form:"period,default=month" binding:"omitempty,oneof=week month quarter year"`
	CompareToPrevious bool   `form:"compareToPrevious,default=true"`
}
