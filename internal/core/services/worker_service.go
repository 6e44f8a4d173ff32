package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/utils/csvutil"
	"github.com/google/uuid"
)

type workerService struct {
	BaseService
	uowMgr    portsrepo.UnitOfWorkManager
	repo      portsrepo.WorkerRepositoryFacade
	activity  portssvc.ActivitySvcFacade
	pipeline  *ValidationPipeline
	exportDir string
	exportTTL time.Duration
}

// NewWorkerService creates the worker service with its batch machinery.
func NewWorkerService(uowMgr portsrepo.UnitOfWorkManager, repo portsrepo.WorkerRepositoryFacade, activity portssvc.ActivitySvcFacade, exportDir string, exportTTL time.Duration) portssvc.WorkerSvcFacade {
	return &workerService{
		uowMgr:    uowMgr,
		repo:      repo,
		activity:  activity,
		pipeline:  NewValidationPipeline(),
		exportDir: exportDir,
		exportTTL: exportTTL,
	}
}

// CreateWorker validates and persists a single worker.
func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, creatorUserID string) (*domain.Worker, error) {
	if res := s.pipeline.ValidateWorkerInput(req); !res.Valid {
		return nil, apperrors.NewAppError(400, res.Reason(), apperrors.ErrValidation)
	}

	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	if req.Email != nil && *req.Email != "" {
		existing, err := s.repo.FindWorkerByEmail(ctx, uow, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil {
			return nil, apperrors.NewAppError(409, "worker with this email already exists", apperrors.ErrDuplicate)
		}
	}

	worker, err := s.createWorkerInUnit(ctx, uow, req, creatorUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to save worker")
		return nil, err
	}

	if err := s.activity.Record(ctx, uow, creatorUserID, "worker.create", "created worker "+worker.Name, map[string]any{"workerID": worker.WorkerID}); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "worker created", slog.String("worker_id", worker.WorkerID))
	return &worker, nil
}

// GetWorkerByID retrieves a single worker.
func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.repo.FindWorkerByID(ctx, nil, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
		}
		return nil, fmt.Errorf("failed to get worker %s: %w", workerID, err)
	}
	return worker, nil
}

// ListWorkers retrieves a page of workers.
func (s *workerService) ListWorkers(ctx context.Context, params dto.ListWorkersParams) (*dto.ListWorkersResponse, error) {
	var status *domain.WorkerStatus
	if params.Status != nil {
		st := domain.WorkerStatus(*params.Status)
		if !st.IsValid() {
			return nil, apperrors.NewAppError(400, "invalid status filter", apperrors.ErrValidation)
		}
		status = &st
	}

	workers, nextToken, err := s.repo.ListWorkers(ctx, params.Limit, params.NextToken, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	return &dto.ListWorkersResponse{
		Workers:   dto.ToWorkerResponses(workers),
		NextToken: nextToken,
	}, nil
}

// UpdateWorker applies a whitelisted patch to one worker.
func (s *workerService) UpdateWorker(ctx context.Context, workerID string, patch dto.WorkerPatch, updaterUserID string) (*domain.Worker, error) {
	if res := s.pipeline.ValidateWorkerPatch(patch); !res.Valid {
		return nil, apperrors.NewAppError(400, res.Reason(), apperrors.ErrValidation)
	}

	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	worker, err := s.applyWorkerPatch(ctx, uow, workerID, patch, updaterUserID)
	if err != nil {
		return nil, err
	}

	if err := s.activity.Record(ctx, uow, updaterUserID, "worker.update", "updated worker "+worker.Name, map[string]any{"workerID": workerID}); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return worker, nil
}

// TerminateWorker transitions a worker to terminated. Rows are never deleted.
func (s *workerService) TerminateWorker(ctx context.Context, workerID string, updaterUserID string) (*domain.Worker, error) {
	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	worker, err := s.repo.FindWorkerByID(ctx, uow, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
		}
		return nil, err
	}
	if worker.Status == domain.WorkerTerminated {
		return nil, apperrors.NewAppError(409, "worker is already terminated", apperrors.ErrConflict)
	}

	worker.Status = domain.WorkerTerminated
	worker.LastUpdatedAt = time.Now()
	worker.LastUpdatedBy = updaterUserID
	if err := s.repo.UpdateWorker(ctx, uow, *worker); err != nil {
		return nil, err
	}

	if err := s.activity.Record(ctx, uow, updaterUserID, "worker.terminate", "terminated worker "+worker.Name, map[string]any{"workerID": workerID}); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return worker, nil
}

// BulkCreateWorkers processes a create-style batch with partial-success
// semantics. Every submitted item ends up in exactly one bucket of the
// result. The whole batch runs in one transaction; if nothing was created
// and at least one item was rejected, the transaction rolls back and the
// operation as a whole fails.
func (s *workerService) BulkCreateWorkers(ctx context.Context, req dto.BulkCreateWorkersRequest, creatorUserID string) (*dto.BulkCreateWorkersResult, error) {
	result := &dto.BulkCreateWorkersResult{
		Created:    []dto.WorkerResponse{},
		Duplicates: []dto.BatchItemError{},
		Errors:     []dto.BatchItemError{},
	}

	// Phase 1: validate every item. Invalid items are recorded and dropped;
	// validation never stops the batch.
	type candidate struct {
		index int
		req   dto.CreateWorkerRequest
	}
	candidates := make([]candidate, 0, len(req.Workers))
	for i, item := range req.Workers {
		if res := s.pipeline.ValidateWorkerInput(item); !res.Valid {
			result.Errors = append(result.Errors, dto.BatchItemError{
				Index:  i,
				Email:  derefEmail(item.Email),
				Reason: res.Reason(),
			})
			continue
		}
		candidates = append(candidates, candidate{index: i, req: item})
	}

	// Phase 2: dedupe by email within the batch. First occurrence wins.
	seenEmails := map[string]bool{}
	deduped := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		email := derefEmail(c.req.Email)
		if email != "" {
			if seenEmails[email] {
				result.Duplicates = append(result.Duplicates, dto.BatchItemError{
					Index:  c.index,
					Email:  email,
					Reason: "duplicate email within batch",
				})
				continue
			}
			seenEmails[email] = true
		}
		deduped = append(deduped, c)
	}

	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	// Phase 3: one IN-clause lookup for all remaining emails against the
	// store, never one query per item.
	emails := make([]string, 0, len(seenEmails))
	for email := range seenEmails {
		emails = append(emails, email)
	}
	existing, err := s.repo.FindWorkersByEmails(ctx, uow, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing emails: %w", err)
	}

	toCreate := make([]candidate, 0, len(deduped))
	for _, c := range deduped {
		email := derefEmail(c.req.Email)
		if email != "" {
			if _, exists := existing[email]; exists {
				result.Errors = append(result.Errors, dto.BatchItemError{
					Index:  c.index,
					Email:  email,
					Reason: "worker with this email already exists",
				})
				continue
			}
		}
		toCreate = append(toCreate, c)
	}

	// Phase 4: sequential inserts, each running as one composed step inside
	// the batch transaction. A store failure here is fatal for the whole
	// batch, unlike the recoverable per-item rejections above.
	for _, c := range toCreate {
		worker, err := s.createWorkerInUnit(ctx, uow, c.req, creatorUserID)
		if err != nil {
			s.LogError(ctx, err, "batch insert failed", slog.Int("item_index", c.index))
			return nil, fmt.Errorf("batch aborted at item %d: %w", c.index, err)
		}
		result.Created = append(result.Created, dto.ToWorkerResponse(&worker))
	}

	result.CreatedCount = len(result.Created)
	result.SkippedCount = len(result.Duplicates) + len(result.Errors)

	// Phase 5: abort policy. Nothing created plus at least one rejection
	// means the operation as a whole failed; the deferred rollback discards
	// the (empty) transaction.
	if result.CreatedCount == 0 && result.SkippedCount > 0 {
		return result, apperrors.NewAppError(422, "no workers created", apperrors.ErrValidation)
	}

	if result.CreatedCount > 0 {
		details := map[string]any{
			"createdCount": result.CreatedCount,
			"skippedCount": result.SkippedCount,
		}
		if err := s.activity.Record(ctx, uow, creatorUserID, "workers.bulk_create", fmt.Sprintf("bulk created %d workers", result.CreatedCount), details); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "bulk create completed",
		slog.Int("created", result.CreatedCount),
		slog.Int("skipped", result.SkippedCount))
	return result, nil
}

// BulkUpdateWorkers processes an update-style batch. Items run sequentially
// against the evolving in-transaction state so one update's effect is visible
// to the next item's checks. Survivors always commit.
func (s *workerService) BulkUpdateWorkers(ctx context.Context, req dto.BulkUpdateWorkersRequest, updaterUserID string) (*dto.BulkUpdateWorkersResult, error) {
	result := &dto.BulkUpdateWorkersResult{
		Updated:  []dto.WorkerResponse{},
		NotFound: []string{},
		Failed:   []dto.BatchItemError{},
	}

	uow, err := s.uowMgr.Begin(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	for i, item := range req.Updates {
		if item.ID == "" {
			result.Failed = append(result.Failed, dto.BatchItemError{Index: i, Reason: "id is required"})
			continue
		}
		if res := s.pipeline.ValidateWorkerPatch(item.WorkerPatch); !res.Valid {
			result.Failed = append(result.Failed, dto.BatchItemError{Index: i, Reason: res.Reason()})
			continue
		}

		worker, err := s.applyWorkerPatch(ctx, uow, item.ID, item.WorkerPatch, updaterUserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				result.NotFound = append(result.NotFound, item.ID)
				continue
			}
			if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrValidation) {
				result.Failed = append(result.Failed, dto.BatchItemError{Index: i, Reason: err.Error()})
				continue
			}
			return nil, fmt.Errorf("batch aborted at item %d: %w", i, err)
		}
		result.Updated = append(result.Updated, dto.ToWorkerResponse(worker))
	}

	if len(result.Updated) > 0 {
		details := map[string]any{
			"updatedCount":  len(result.Updated),
			"notFoundCount": len(result.NotFound),
			"failedCount":   len(result.Failed),
		}
		if err := s.activity.Record(ctx, uow, updaterUserID, "workers.bulk_update", fmt.Sprintf("bulk updated %d workers", len(result.Updated)), details); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// ImportWorkersFromCSV parses a CSV file and feeds the parsed rows through
// the create-style batch. The source file is removed afterwards regardless of
// outcome, best-effort.
func (s *workerService) ImportWorkersFromCSV(ctx context.Context, req dto.ImportWorkersRequest, creatorUserID string) (*dto.ImportWorkersResult, error) {
	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, apperrors.NewAppError(400, "cannot open import file "+req.FilePath, err)
	}

	delimiter := ','
	if req.Delimiter != "" {
		runes := []rune(req.Delimiter)
		if len(runes) != 1 {
			file.Close()
			return nil, apperrors.NewAppError(400, "delimiter must be a single character", apperrors.ErrValidation)
		}
		delimiter = runes[0]
	}

	workers, parseErrors := csvutil.ParseWorkers(file, req.HasHeader, delimiter)
	file.Close()
	defer func() {
		if removeErr := os.Remove(req.FilePath); removeErr != nil {
			s.LogWarn(ctx, "failed to remove import source file",
				slog.String("path", req.FilePath),
				slog.String("error", removeErr.Error()))
		}
	}()

	batchResult, batchErr := s.BulkCreateWorkers(ctx, dto.BulkCreateWorkersRequest{Workers: workers}, creatorUserID)
	if batchResult == nil {
		return nil, batchErr
	}

	result := &dto.ImportWorkersResult{
		BulkCreateWorkersResult: *batchResult,
		ParseErrors:             parseErrors,
	}
	return result, batchErr
}

// ExportWorkersToCSV filters workers and renders them as CSV text. A copy is
// written under the export directory and scheduled for removal after the
// configured TTL.
func (s *workerService) ExportWorkersToCSV(ctx context.Context, req dto.ExportWorkersRequest, actorUserID string) (*dto.ExportWorkersResult, error) {
	filter := portsrepo.WorkerExportFilter{WorkerIDs: req.WorkerIDs}
	if req.Status != nil {
		st := domain.WorkerStatus(*req.Status)
		if !st.IsValid() {
			return nil, apperrors.NewAppError(400, "invalid status filter", apperrors.ErrValidation)
		}
		filter.Status = &st
	}
	if req.HiredFrom != nil {
		from, err := csvutil.ParseDate(*req.HiredFrom)
		if err != nil {
			return nil, apperrors.NewAppError(400, "hiredFrom must be a valid date in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		filter.HiredFrom = &from
	}
	if req.HiredTo != nil {
		to, err := csvutil.ParseDate(*req.HiredTo)
		if err != nil {
			return nil, apperrors.NewAppError(400, "hiredTo must be a valid date in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		filter.HiredTo = &to
	}

	workers, err := s.repo.ListWorkersForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers for export: %w", err)
	}

	csvText, err := csvutil.EncodeWorkers(workers, req.IncludeFields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workers as CSV: %w", err)
	}

	fields := req.IncludeFields
	if len(fields) == 0 {
		fields = csvutil.Columns
	}

	result := &dto.ExportWorkersResult{
		CSV:         csvText,
		WorkerCount: len(workers),
		Fields:      fields,
		GeneratedAt: time.Now(),
	}

	// The file copy is a convenience; failing to write it does not fail the
	// export since the CSV text is already in the response.
	if s.exportDir != "" {
		if err := os.MkdirAll(s.exportDir, 0o755); err == nil {
			path := filepath.Join(s.exportDir, fmt.Sprintf("workers_export_%d.csv", time.Now().UnixNano()))
			if writeErr := os.WriteFile(path, []byte(csvText), 0o644); writeErr == nil {
				result.FilePath = path
				logger := s.GetLogger(ctx)
				time.AfterFunc(s.exportTTL, func() {
					if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
						logger.Warn("failed to remove expired export file",
							slog.String("path", path),
							slog.String("error", removeErr.Error()))
					}
				})
			} else {
				s.LogWarn(ctx, "failed to write export file", slog.String("error", writeErr.Error()))
			}
		} else {
			s.LogWarn(ctx, "failed to create export directory", slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// applyWorkerPatch loads a worker inside the unit of work, applies the patch
// whitelist field by field and persists the result. Email changes are checked
// against the evolving in-transaction state.
func (s *workerService) applyWorkerPatch(ctx context.Context, uow portsrepo.UnitOfWork, workerID string, patch dto.WorkerPatch, updaterUserID string) (*domain.Worker, error) {
	worker, err := s.repo.FindWorkerByID(ctx, uow, workerID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != "" && (worker.Email == nil || *worker.Email != *patch.Email) {
		other, err := s.repo.FindWorkerByEmail(ctx, uow, *patch.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.WorkerID != workerID {
			return nil, apperrors.NewAppError(409, "email already in use by another worker", apperrors.ErrDuplicate)
		}
	}

	if patch.Name != nil {
		worker.Name = *patch.Name
	}
	if patch.Contact != nil {
		worker.Contact = *patch.Contact
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			worker.Email = nil
		} else {
			worker.Email = patch.Email
		}
	}
	if patch.Address != nil {
		worker.Address = *patch.Address
	}
	if patch.Status != nil {
		worker.Status = domain.WorkerStatus(*patch.Status)
	}
	if patch.HireDate != nil {
		hireDate, err := csvutil.ParseDate(*patch.HireDate)
		if err != nil {
			return nil, apperrors.NewAppError(400, "hireDate must be a valid date in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		worker.HireDate = hireDate
	}
	worker.LastUpdatedAt = time.Now()
	worker.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateWorker(ctx, uow, *worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// createWorkerInUnit persists one worker as a single step of the supplied
// unit of work. The step borrows the caller's transaction, so its commit and
// rollback are no-ops and the outcome stays with the caller.
func (s *workerService) createWorkerInUnit(ctx context.Context, outer portsrepo.UnitOfWork, req dto.CreateWorkerRequest, creatorUserID string) (domain.Worker, error) {
	stepUnit, err := s.uowMgr.Begin(ctx, outer)
	if err != nil {
		return domain.Worker{}, fmt.Errorf("failed to begin worker create step: %w", err)
	}
	defer stepUnit.Rollback(ctx)

	worker := s.buildWorker(req, creatorUserID)
	if err := s.repo.SaveWorker(ctx, stepUnit, worker); err != nil {
		return domain.Worker{}, err
	}
	if err := stepUnit.Commit(ctx); err != nil {
		return domain.Worker{}, err
	}
	return worker, nil
}

func (s *workerService) buildWorker(req dto.CreateWorkerRequest, creatorUserID string) domain.Worker {
	now := time.Now()
	hireDate, _ := csvutil.ParseDate(req.HireDate) // Validated upstream
	var email *string
	if req.Email != nil && *req.Email != "" {
		email = req.Email
	}
	return domain.Worker{
		WorkerID: uuid.NewString(),
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    email,
		Address:  req.Address,
		Status:   domain.WorkerStatus(req.Status),
		HireDate: hireDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

func derefEmail(email *string) string {
	if email == nil {
		return ""
	}
	return *email
}
