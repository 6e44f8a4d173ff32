package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWorkerService satisfies WorkerSvcFacade with per-method overrides so a
// handler test only wires the calls it cares about.
type stubWorkerService struct {
	getWorkerByIDFn     func(ctx context.Context, workerID string) (*domain.Worker, error)
	bulkCreateWorkersFn func(ctx context.Context, req dto.BulkCreateWorkersRequest, creatorUserID string) (*dto.BulkCreateWorkersResult, error)
}

func (s *stubWorkerService) CreateWorker(context.Context, dto.CreateWorkerRequest, string) (*domain.Worker, error) {
	return nil, nil
}

func (s *stubWorkerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	if s.getWorkerByIDFn != nil {
		return s.getWorkerByIDFn(ctx, workerID)
	}
	return nil, nil
}

func (s *stubWorkerService) ListWorkers(context.Context, dto.ListWorkersParams) (*dto.ListWorkersResponse, error) {
	return nil, nil
}

func (s *stubWorkerService) UpdateWorker(context.Context, string, dto.WorkerPatch, string) (*domain.Worker, error) {
	return nil, nil
}

func (s *stubWorkerService) TerminateWorker(context.Context, string, string) (*domain.Worker, error) {
	return nil, nil
}

func (s *stubWorkerService) BulkCreateWorkers(ctx context.Context, req dto.BulkCreateWorkersRequest, creatorUserID string) (*dto.BulkCreateWorkersResult, error) {
	if s.bulkCreateWorkersFn != nil {
		return s.bulkCreateWorkersFn(ctx, req, creatorUserID)
	}
	return &dto.BulkCreateWorkersResult{}, nil
}

func (s *stubWorkerService) BulkUpdateWorkers(context.Context, dto.BulkUpdateWorkersRequest, string) (*dto.BulkUpdateWorkersResult, error) {
	return &dto.BulkUpdateWorkersResult{}, nil
}

func (s *stubWorkerService) ImportWorkersFromCSV(context.Context, dto.ImportWorkersRequest, string) (*dto.ImportWorkersResult, error) {
	return &dto.ImportWorkersResult{}, nil
}

func (s *stubWorkerService) ExportWorkersToCSV(context.Context, dto.ExportWorkersRequest, string) (*dto.ExportWorkersResult, error) {
	return &dto.ExportWorkersResult{}, nil
}

func newWorkerTestRouter(ws *stubWorkerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newWorkerHandler(ws)
	workers := r.Group("/api/v1/workers")
	workers.GET("/:workerID", h.getWorker)
	workers.POST("/bulk", h.bulkCreateWorkers)
	return r
}

func TestGetWorker_NotFoundEnvelope(t *testing.T) {
	ws := &stubWorkerService{
		getWorkerByIDFn: func(_ context.Context, workerID string) (*domain.Worker, error) {
			return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
		},
	}
	router := newWorkerTestRouter(ws)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers/w-missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Status)
	assert.Equal(t, "worker w-missing not found", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestBulkCreateWorkers_AbortKeepsBreakdownInData(t *testing.T) {
	ws := &stubWorkerService{
		bulkCreateWorkersFn: func(_ context.Context, _ dto.BulkCreateWorkersRequest, _ string) (*dto.BulkCreateWorkersResult, error) {
			result := &dto.BulkCreateWorkersResult{
				Created:      []dto.WorkerResponse{},
				SkippedCount: 2,
				Errors: []dto.BatchItemError{
					{Index: 0, Email: "a@example.com", Reason: "worker with this email already exists"},
					{Index: 1, Email: "b@example.com", Reason: "worker with this email already exists"},
				},
			}
			return result, apperrors.NewAppError(http.StatusUnprocessableEntity, "no workers created", apperrors.ErrValidation)
		},
	}
	router := newWorkerTestRouter(ws)

	body := `{"workers":[{"name":"A","status":"active","hireDate":"2026-01-01"},{"name":"B","status":"active","hireDate":"2026-01-01"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Status)
	assert.Equal(t, "no workers created", envelope.Message)

	// The abort still returns the per-item breakdown in data.
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["skippedCount"])
	errs, ok := data["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestBulkCreateWorkers_SuccessEnvelope(t *testing.T) {
	ws := &stubWorkerService{
		bulkCreateWorkersFn: func(_ context.Context, req dto.BulkCreateWorkersRequest, _ string) (*dto.BulkCreateWorkersResult, error) {
			return &dto.BulkCreateWorkersResult{CreatedCount: len(req.Workers)}, nil
		},
	}
	router := newWorkerTestRouter(ws)

	body := `{"workers":[{"name":"A","status":"active","hireDate":"2026-01-01"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["createdCount"])
}
