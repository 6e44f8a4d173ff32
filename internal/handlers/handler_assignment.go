package handlers

import (
	"net/http"

	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assignmentHandler handles HTTP requests for plot assignments.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

// registerAssignmentRoutes registers all assignment-related routes.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", h.createAssignment)
		assignments.GET("/:assignmentID", h.getAssignment)
		assignments.POST("/:assignmentID/complete", h.completeAssignment)
		assignments.POST("/:assignmentID/cancel", h.cancelAssignment)
	}
	rg.GET("/workers/:workerID/assignments", h.listWorkerAssignments)
}

func (h *assignmentHandler) createAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusCreated, "assignment created", assignment)
}

func (h *assignmentHandler) getAssignment(c *gin.Context) {
	assignment, err := h.assignmentService.GetAssignmentByID(c.Request.Context(), c.Param("assignmentID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "assignment retrieved", assignment)
}

func (h *assignmentHandler) listWorkerAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListAssignmentsByWorker(c.Request.Context(), c.Param("workerID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "assignments retrieved", assignments)
}

func (h *assignmentHandler) completeAssignment(c *gin.Context) {
	var req dto.CompleteAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	assignment, err := h.assignmentService.CompleteAssignment(c.Request.Context(), c.Param("assignmentID"), req, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "assignment completed", assignment)
}

func (h *assignmentHandler) cancelAssignment(c *gin.Context) {
	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	assignment, err := h.assignmentService.CancelAssignment(c.Request.Context(), c.Param("assignmentID"), actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "assignment cancelled", assignment)
}
