package dto

import (
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// CreateWorkerRequest carries one worker to create. Dates are ISO-8601 date
// strings; parsing happens in the validation pipeline so a bad date becomes a
// per-item error instead of a binding failure.
type CreateWorkerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Contact  string  `json:"contact"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  string  `json:"address"`
	Status   string  `json:"status" validate:"required,oneof=active inactive on-leave terminated"`
	HireDate string  `json:"hireDate" validate:"required"`
}

// WorkerPatch is the whitelist of mutable worker columns. Pointer fields
// distinguish omitted from zero-valued; anything not listed here cannot be
// changed through an update operation.
type WorkerPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive on-leave terminated"`
	HireDate *string `json:"hireDate"`
}

// UpdateWorkerItem is one entry of a bulk update batch.
type UpdateWorkerItem struct {
	ID string `json:"id" validate:"required"`
	WorkerPatch
}

// BulkCreateWorkersRequest carries a create-style batch.
type BulkCreateWorkersRequest struct {
	Workers []CreateWorkerRequest `json:"workers" binding:"required"`
}

// BulkUpdateWorkersRequest carries an update-style batch.
type BulkUpdateWorkersRequest struct {
	Updates []UpdateWorkerItem `json:"updates" binding:"required"`
}

// BatchItemError records why one submitted item was not persisted.
type BatchItemError struct {
	Index  int    `json:"index"` // Zero-based position in the submitted batch
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason"`
}

// BulkCreateWorkersResult is the structured outcome of a create-style batch.
// Every submitted item lands in exactly one of Created, Duplicates or Errors.
type BulkCreateWorkersResult struct {
	Created      []WorkerResponse `json:"created"`
	CreatedCount int              `json:"createdCount"`
	SkippedCount int              `json:"skippedCount"`
	Duplicates   []BatchItemError `json:"duplicates"` // In-batch duplicate keys
	Errors       []BatchItemError `json:"errors"`     // Validation failures and already-existing keys
}

// BulkUpdateWorkersResult is the structured outcome of an update-style batch.
type BulkUpdateWorkersResult struct {
	Updated  []WorkerResponse `json:"updated"`
	NotFound []string         `json:"notFound"` // IDs that did not resolve
	Failed   []BatchItemError `json:"failed"`   // Resolved but rejected items
}

// CSVRowError describes one unparseable CSV row.
type CSVRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportWorkersRequest points at a CSV file to ingest. The source file is
// deleted after processing regardless of outcome.
type ImportWorkersRequest struct {
	FilePath  string `json:"filePath" binding:"required"`
	HasHeader bool   `json:"hasHeader"`
	Delimiter string `json:"delimiter"` // Single character; defaults to comma
}

// ImportWorkersResult combines the batch outcome with CSV parse errors.
type ImportWorkersResult struct {
	BulkCreateWorkersResult
	ParseErrors []CSVRowError `json:"parseErrors"`
}

// ExportWorkersRequest selects and filters workers for CSV export.
type ExportWorkersRequest struct {
	WorkerIDs     []string `json:"workerIds"`
	Status        *string  `json:"status" binding:"omitempty,oneof=active inactive on-leave terminated"`
	HiredFrom     *string  `json:"hiredFrom"` // ISO-8601 date
	HiredTo       *string  `json:"hiredTo"`   // ISO-8601 date, inclusive
	IncludeFields []string `json:"includeFields"`
}

// ExportWorkersResult carries the CSV text plus a summary. The temp file at
// FilePath is removed after a grace period, best-effort.
type ExportWorkersResult struct {
	CSV         string    `json:"csv"`
	FilePath    string    `json:"filePath"`
	WorkerCount int       `json:"workerCount"`
	Fields      []string  `json:"fields"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=active inactive on-leave terminated"`
}

// WorkerResponse is the outward representation of a worker.
type WorkerResponse struct {
	WorkerID  string    `json:"workerID"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     *string   `json:"email,omitempty"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	HireDate  string    `json:"hireDate"` // ISO-8601 date
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListWorkersResponse wraps a page of workers.
type ListWorkersResponse struct {
	Workers   []WorkerResponse `json:"workers"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToWorkerResponse converts a domain Worker to its response DTO.
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:  w.WorkerID,
		Name:      w.Name,
		Contact:   w.Contact,
		Email:     w.Email,
		Address:   w.Address,
		Status:    string(w.Status),
		HireDate:  w.HireDate.Format("2006-01-02"),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.LastUpdatedAt,
	}
}

// ToWorkerResponses converts a slice of domain Workers.
func ToWorkerResponses(ws []domain.Worker) []WorkerResponse {
	out := make([]WorkerResponse, len(ws))
	for i := range ws {
		out[i] = ToWorkerResponse(&ws[i])
	}
	return out
}
