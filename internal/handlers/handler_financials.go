package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hartbuilt/project_finance_app/internal/apperrors"
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	portssvc "github.com/hartbuilt/project_finance_app/internal/core/ports/services"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/hartbuilt/project_finance_app/internal/dto"
	"github.com/hartbuilt/project_finance_app/internal/middleware"
	"github.com/hartbuilt/project_finance_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// financialsHandler handles HTTP requests related to project financials
type financialsHandler struct {
	cfg            *config.Config
	reconciliation portssvc.ReconciliationService
}

// newFinancialsHandler creates a new financialsHandler
func newFinancialsHandler(cfg *config.Config, rs portssvc.ReconciliationService) *financialsHandler {
	return &financialsHandler{
		cfg:            cfg,
		reconciliation: rs,
	}
}

// registerFinancialsRoutes registers routes related to project financials
func registerFinancialsRoutes(rg *gin.RouterGroup, cfg *config.Config, reconciliation portssvc.ReconciliationService) {
	h := newFinancialsHandler(cfg, reconciliation)

	projectGroup := rg.Group("/projects/:project_id")
	{
		projectGroup.GET("/financials", h.getProjectFinancials)
		projectGroup.POST("/financials/refresh", h.refreshProjectFinancials)
	}
}

// thresholds resolves the engine thresholds for a request: config defaults,
// overridden by a validated query parameter when present.
func (h *financialsHandler) thresholds(req dto.FinancialsQueryRequest) reconcile.Thresholds {
	thresholds := reconcile.Thresholds{BudgetAlertPercent: h.cfg.BudgetAlertPercent}
	if req.AlertThreshold != nil {
		thresholds.BudgetAlertPercent = decimal.NewFromFloat(*req.AlertThreshold)
	}
	return thresholds
}

// getProjectFinancials godoc
// @Summary Get reconciled project financials
// @Description Recomputes margin, contingency, and budget-health figures from the project's current records
// @Tags financials
// @Produce json
// @Param project_id path string true "Project ID"
// @Param alert_threshold query number false "Cost variance alert threshold percent" default(10)
// @Param approval_status query string false "Restrict aggregation to one expense approval status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.ProjectFinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Router /projects/{project_id}/financials [get]
func (h *financialsHandler) getProjectFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projectID := c.Param("project_id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID required in path"})
		return
	}

	var req dto.FinancialsQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid financials query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var opts []reconcile.Option
	if req.ApprovalStatus != "" {
		opts = append(opts, reconcile.WithApprovalStatus(domain.ApprovalStatus(req.ApprovalStatus)))
	}

	report, err := h.reconciliation.ProjectFinancials(c.Request.Context(), projectID, h.thresholds(req), opts...)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to reconcile project financials",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile project financials"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectFinancialsResponse(report))
}

// refreshProjectFinancials godoc
// @Summary Reconcile and persist derived project financials
// @Description Recomputes the project's derived figures and writes them back to storage
// @Tags financials
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectFinancialsResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Router /projects/{project_id}/financials/refresh [post]
func (h *financialsHandler) refreshProjectFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projectID := c.Param("project_id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID required in path"})
		return
	}

	thresholds := reconcile.Thresholds{BudgetAlertPercent: h.cfg.BudgetAlertPercent}
	report, err := h.reconciliation.RefreshDerivedFinancials(c.Request.Context(), projectID, thresholds)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to refresh project financials",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh project financials"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectFinancialsResponse(report))
}
