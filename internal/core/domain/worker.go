package domain

import "time"

// WorkerStatus indicates the employment state of a worker.
type WorkerStatus string

const (
	WorkerActive     WorkerStatus = "active"
	WorkerInactive   WorkerStatus = "inactive"
	WorkerOnLeave    WorkerStatus = "on-leave"
	WorkerTerminated WorkerStatus = "terminated"
)

// IsValid reports whether the status is one of the allowed values.
func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerActive, WorkerInactive, WorkerOnLeave, WorkerTerminated:
		return true
	}
	return false
}

// Worker represents a farm worker. Financial state is never stored on the
// worker row; balances are always derived from debts and payments.
type Worker struct {
	WorkerID string       `json:"workerID"` // Primary Key (UUID)
	Name     string       `json:"name"`
	Contact  string       `json:"contact"`
	Email    *string      `json:"email,omitempty"` // Unique across workers when present
	Address  string       `json:"address"`
	Status   WorkerStatus `json:"status"`
	HireDate time.Time    `json:"hireDate"`
	AuditFields
}
