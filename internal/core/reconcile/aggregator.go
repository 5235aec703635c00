package reconcile

import (
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateCosts sums normalized contributions and approved change-order cost
// impacts into the project's cost figures. Pending and rejected change orders
// never move adjusted estimated costs; their impact is reported separately.
func AggregateCosts(project domain.Project, contributions []domain.CostContribution, changeOrders []domain.ChangeOrder) domain.CostTotals {
	totals := domain.CostTotals{
		TotalActualCosts:       decimal.Zero,
		AdjustedEstimatedCosts: project.OriginalEstimatedCosts,
		InternalLaborCosts:     decimal.Zero,
		PendingCostImpact:      decimal.Zero,
	}

	for _, c := range contributions {
		if c.ProjectID != project.ProjectID {
			continue
		}
		totals.TotalActualCosts = totals.TotalActualCosts.Add(c.Amount)
		if c.IsInternalLabor {
			totals.InternalLaborCosts = totals.InternalLaborCosts.Add(c.Amount)
		}
	}

	for _, co := range changeOrders {
		if co.ProjectID != project.ProjectID {
			continue
		}
		switch co.Status {
		case domain.ChangeOrderApproved:
			totals.AdjustedEstimatedCosts = totals.AdjustedEstimatedCosts.Add(co.CostImpact)
		case domain.ChangeOrderPending:
			totals.PendingCostImpact = totals.PendingCostImpact.Add(co.CostImpact)
		}
	}

	return totals
}
