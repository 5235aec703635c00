package services

import (
	portsrepo "github.com/hartbuilt/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/hartbuilt/project_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Reconciliation: NewReconciliationService(repos.SnapshotRepo),
	}
}
