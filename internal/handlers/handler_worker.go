package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workerHandler handles HTTP requests for workers, including the batch and
// CSV operations.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

// registerWorkerRoutes registers all worker-related routes.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade, ledgerService portssvc.LedgerSvcFacade, performanceService portssvc.PerformanceSvcFacade) {
	h := newWorkerHandler(workerService)
	lh := newLedgerHandler(ledgerService, performanceService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.POST("/bulk", h.bulkCreateWorkers)
		workers.PUT("/bulk", h.bulkUpdateWorkers)
		workers.POST("/import", h.importWorkers)
		workers.POST("/export", h.exportWorkers)
		workers.GET("/:workerID", h.getWorker)
		workers.PATCH("/:workerID", h.updateWorker)
		workers.DELETE("/:workerID", h.terminateWorker)
		workers.GET("/:workerID/balance", lh.getWorkerBalance)
		workers.GET("/:workerID/performance", lh.getWorkerPerformance)
	}
}

func (h *workerHandler) createWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	worker, err := h.workerService.CreateWorker(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusCreated, "worker created", dto.ToWorkerResponse(worker))
}

func (h *workerHandler) getWorker(c *gin.Context) {
	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), c.Param("workerID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "worker retrieved", dto.ToWorkerResponse(worker))
}

func (h *workerHandler) listWorkers(c *gin.Context) {
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.workerService.ListWorkers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "workers retrieved", page)
}

func (h *workerHandler) updateWorker(c *gin.Context) {
	var patch dto.WorkerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	worker, err := h.workerService.UpdateWorker(c.Request.Context(), c.Param("workerID"), patch, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "worker updated", dto.ToWorkerResponse(worker))
}

func (h *workerHandler) terminateWorker(c *gin.Context) {
	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	worker, err := h.workerService.TerminateWorker(c.Request.Context(), c.Param("workerID"), actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "worker terminated", dto.ToWorkerResponse(worker))
}

func (h *workerHandler) bulkCreateWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkCreateWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	logger.Info("Received bulk create request", slog.Int("item_count", len(req.Workers)))

	result, err := h.workerService.BulkCreateWorkers(c.Request.Context(), req, actorID)
	if err != nil {
		// The abort path still carries the per-item breakdown.
		respondError(c, err, result)
		return
	}
	respondOK(c, http.StatusOK, "bulk create completed", result)
}

func (h *workerHandler) bulkUpdateWorkers(c *gin.Context) {
	var req dto.BulkUpdateWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	result, err := h.workerService.BulkUpdateWorkers(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, result)
		return
	}
	respondOK(c, http.StatusOK, "bulk update completed", result)
}

func (h *workerHandler) importWorkers(c *gin.Context) {
	var req dto.ImportWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	result, err := h.workerService.ImportWorkersFromCSV(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, result)
		return
	}
	respondOK(c, http.StatusOK, "import completed", result)
}

func (h *workerHandler) exportWorkers(c *gin.Context) {
	var req dto.ExportWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	result, err := h.workerService.ExportWorkersToCSV(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "export completed", result)
}
