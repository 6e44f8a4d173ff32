package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

// WorkerSvcFacade defines worker CRUD plus the batch and CSV operations.
type WorkerSvcFacade interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, creatorUserID string) (*domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	ListWorkers(ctx context.Context, params dto.ListWorkersParams) (*dto.ListWorkersResponse, error)
	UpdateWorker(ctx context.Context, workerID string, patch dto.WorkerPatch, updaterUserID string) (*domain.Worker, error)
	TerminateWorker(ctx context.Context, workerID string, updaterUserID string) (*domain.Worker, error)

	BulkCreateWorkers(ctx context.Context, req dto.BulkCreateWorkersRequest, creatorUserID string) (*dto.BulkCreateWorkersResult, error)
	BulkUpdateWorkers(ctx context.Context, req dto.BulkUpdateWorkersRequest, updaterUserID string) (*dto.BulkUpdateWorkersResult, error)
	ImportWorkersFromCSV(ctx context.Context, req dto.ImportWorkersRequest, creatorUserID string) (*dto.ImportWorkersResult, error)
	ExportWorkersToCSV(ctx context.Context, req dto.ExportWorkersRequest, actorUserID string) (*dto.ExportWorkersResult, error)
}
