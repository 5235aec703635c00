package reconcile

import (
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizePortfolio folds per-project reports into a portfolio rollup.
// Active contract value counts only approved and in-progress projects; cost,
// margin, and warning tallies cover every project in the set.
func SummarizePortfolio(reports []domain.ReconciliationReport) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{
		ProjectCount:         len(reports),
		ActiveContractValue:  decimal.Zero,
		TotalActualCosts:     decimal.Zero,
		TotalCurrentMargin:   decimal.Zero,
		TotalProjectedMargin: decimal.Zero,
	}

	for _, r := range reports {
		f := r.Financials

		if f.Status.CountsTowardActivePortfolio() {
			summary.ActiveProjectCount++
			summary.ActiveContractValue = summary.ActiveContractValue.Add(f.ContractedAmount)
		}

		summary.TotalActualCosts = summary.TotalActualCosts.Add(f.Costs.TotalActualCosts)
		summary.TotalCurrentMargin = summary.TotalCurrentMargin.Add(f.Margins.CurrentMargin)
		summary.TotalProjectedMargin = summary.TotalProjectedMargin.Add(f.Margins.ProjectedMargin)
		summary.WarningCount += len(r.Warnings)

		atRisk := false
		overBudget := false
		for _, c := range f.Conditions {
			switch c.Code {
			case domain.ConditionMarginAtRisk:
				atRisk = true
			case domain.ConditionDNEExceeded, domain.ConditionCostVarianceHigh:
				overBudget = true
			}
		}
		if atRisk {
			summary.ProjectsAtRisk++
		}
		if overBudget {
			summary.ProjectsOverBudget++
		}
	}

	return summary
}
