package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	portsrepo "github.com/hartbuilt/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/hartbuilt/project_finance_app/internal/core/ports/services"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
)

// reconciliationService implements the ReconciliationService interface
type reconciliationService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepository
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(repo portsrepo.SnapshotRepository) portssvc.ReconciliationService {
	return &reconciliationService{snapshotRepo: repo}
}

// Ensure reconciliationService implements the ReconciliationService interface
var _ portssvc.ReconciliationService = (*reconciliationService)(nil)

// ProjectFinancials reconciles a single project from a fresh snapshot.
func (s *reconciliationService) ProjectFinancials(ctx context.Context, projectID string, thresholds reconcile.Thresholds, opts ...reconcile.Option) (*domain.ReconciliationReport, error) {
	snap, err := s.snapshotRepo.GetProjectSnapshot(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load project snapshot",
			slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to load snapshot for project %s: %w", projectID, err)
	}

	report := reconcile.Reconcile(*snap, thresholds, opts...)

	s.LogInfo(ctx, "Project financials reconciled",
		slog.String("project_id", projectID),
		slog.Int("warning_count", len(report.Warnings)),
		slog.Int("condition_count", len(report.Financials.Conditions)))
	return &report, nil
}

// PortfolioSummary reconciles every project concurrently and folds the
// per-project reports into the portfolio rollup.
func (s *reconciliationService) PortfolioSummary(ctx context.Context, thresholds reconcile.Thresholds) (*domain.PortfolioSummary, []domain.ReconciliationWarning, error) {
	snaps, err := s.snapshotRepo.ListProjectSnapshots(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load portfolio snapshots")
		return nil, nil, fmt.Errorf("failed to load portfolio snapshots: %w", err)
	}

	reports := reconcile.ReconcileAll(snaps, thresholds)
	summary := reconcile.SummarizePortfolio(reports)

	warnings := make([]domain.ReconciliationWarning, 0)
	for _, r := range reports {
		warnings = append(warnings, r.Warnings...)
	}

	s.LogInfo(ctx, "Portfolio summary reconciled",
		slog.Int("project_count", summary.ProjectCount),
		slog.Int("warning_count", len(warnings)))
	return &summary, warnings, nil
}

// RefreshDerivedFinancials reconciles a project and writes the derived
// figures back to storage for consumers that read persisted values.
func (s *reconciliationService) RefreshDerivedFinancials(ctx context.Context, projectID string, thresholds reconcile.Thresholds) (*domain.ReconciliationReport, error) {
	report, err := s.ProjectFinancials(ctx, projectID, thresholds)
	if err != nil {
		return nil, err
	}

	if err := s.snapshotRepo.SaveDerivedFinancials(ctx, report.Financials); err != nil {
		s.LogError(ctx, err, "Failed to persist derived financials",
			slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to persist derived financials for project %s: %w", projectID, err)
	}

	s.LogInfo(ctx, "Derived financials persisted",
		slog.String("project_id", projectID))
	return report, nil
}
