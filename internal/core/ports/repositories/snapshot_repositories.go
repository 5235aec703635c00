package repositories

import (
	"context"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
)

// SnapshotRepository loads the consistent entity snapshots the reconciliation
// engine computes over, and persists derived figures back when a caller asks
// for it. The engine itself never touches storage.
type SnapshotRepository interface {
	// GetProjectSnapshot loads one project with all records participating in
	// its reconciliation. Returns apperrors.ErrNotFound for unknown projects.
	GetProjectSnapshot(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error)

	// ListProjectSnapshots loads snapshots for every project, one snapshot
	// per project, for portfolio rollups.
	ListProjectSnapshots(ctx context.Context) ([]domain.ProjectSnapshot, error)

	// SaveDerivedFinancials writes the engine's derived figures back onto the
	// project row for consumers that read persisted values.
	SaveDerivedFinancials(ctx context.Context, financials domain.ProjectFinancials) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SnapshotRepo SnapshotRepository
}
