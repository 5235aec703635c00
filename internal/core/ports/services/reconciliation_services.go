package services

import (
	"context"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
)

// ReconciliationService recomputes derived financial figures from entity
// snapshots on demand.
type ReconciliationService interface {
	// ProjectFinancials reconciles a single project. Warnings ride along with
	// the figures; they never abort the computation.
	ProjectFinancials(ctx context.Context, projectID string, thresholds reconcile.Thresholds, opts ...reconcile.Option) (*domain.ReconciliationReport, error)

	// PortfolioSummary reconciles every project and folds the reports into a
	// portfolio rollup.
	PortfolioSummary(ctx context.Context, thresholds reconcile.Thresholds) (*domain.PortfolioSummary, []domain.ReconciliationWarning, error)

	// RefreshDerivedFinancials reconciles a project and persists the derived
	// figures back through the snapshot repository.
	RefreshDerivedFinancials(ctx context.Context, projectID string, thresholds reconcile.Thresholds) (*domain.ReconciliationReport, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Reconciliation ReconciliationService
}
