package handlers

import (
	"net/http"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the derived read models: balance summary and period
// performance.
type ledgerHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	performanceService portssvc.PerformanceSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, ps portssvc.PerformanceSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, performanceService: ps}
}

func (h *ledgerHandler) getWorkerBalance(c *gin.Context) {
	summary, err := h.ledgerService.ComputeWorkerBalance(c.Request.Context(), c.Param("workerID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "balance computed", summary)
}

func (h *ledgerHandler) getWorkerPerformance(c *gin.Context) {
	var params dto.PerformanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	if params.Period == "" {
		params.Period = string(domain.PeriodMonth)
	}

	report, err := h.performanceService.GetWorkerPerformance(c.Request.Context(), c.Param("workerID"), domain.PeriodType(params.Period), params.CompareToPrevious)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "performance computed", report)
}
