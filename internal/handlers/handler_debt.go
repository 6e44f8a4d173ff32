package handlers

import (
	"net/http"

	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/bukidworks/farm_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests for debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers all debt-related routes.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("/:debtID", h.getDebt)
		debts.PATCH("/:debtID", h.updateDebt)
		debts.POST("/:debtID/cancel", h.cancelDebt)
	}
	rg.GET("/workers/:workerID/debts", h.listWorkerDebts)
}

func (h *debtHandler) createDebt(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	debt, err := h.debtService.CreateDebt(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusCreated, "debt created", debt)
}

func (h *debtHandler) getDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("debtID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "debt retrieved", debt)
}

func (h *debtHandler) listWorkerDebts(c *gin.Context) {
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	debts, err := h.debtService.ListDebtsByWorker(c.Request.Context(), c.Param("workerID"), params)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "debts retrieved", debts)
}

func (h *debtHandler) updateDebt(c *gin.Context) {
	var patch dto.DebtPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	debt, err := h.debtService.UpdateDebt(c.Request.Context(), c.Param("debtID"), patch, actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "debt updated", debt)
}

func (h *debtHandler) cancelDebt(c *gin.Context) {
	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	debt, err := h.debtService.CancelDebt(c.Request.Context(), c.Param("debtID"), actorID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "debt cancelled", debt)
}
