package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hartbuilt/project_finance_app/internal/core/ports/services"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/hartbuilt/project_finance_app/internal/dto"
	"github.com/hartbuilt/project_finance_app/internal/middleware"
	"github.com/hartbuilt/project_finance_app/internal/platform/config"
)

// portfolioHandler handles HTTP requests related to portfolio rollups
type portfolioHandler struct {
	cfg            *config.Config
	reconciliation portssvc.ReconciliationService
}

// registerPortfolioRoutes registers routes related to portfolio rollups
func registerPortfolioRoutes(rg *gin.RouterGroup, cfg *config.Config, reconciliation portssvc.ReconciliationService) {
	h := &portfolioHandler{cfg: cfg, reconciliation: reconciliation}

	rg.GET("/portfolio/summary", h.getPortfolioSummary)
}

// getPortfolioSummary godoc
// @Summary Get portfolio-level financial rollup
// @Description Reconciles every project and folds the results into active contract value, aggregate margins, and at-risk counts
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Router /portfolio/summary [get]
func (h *portfolioHandler) getPortfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	thresholds := reconcile.Thresholds{BudgetAlertPercent: h.cfg.BudgetAlertPercent}
	summary, warnings, err := h.reconciliation.PortfolioSummary(c.Request.Context(), thresholds)
	if err != nil {
		logger.Error("Failed to reconcile portfolio summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile portfolio summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary, warnings))
}
