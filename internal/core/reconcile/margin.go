package reconcile

import (
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
)

// CalculateMargins derives the margin figures from contract value and
// aggregated costs. All arithmetic stays in fixed-point decimals; every
// percentage goes through the zero-denominator guard, so a project with no
// contract value yields zero percentages rather than an error.
func CalculateMargins(project domain.Project, costs domain.CostTotals) domain.MarginFigures {
	currentMargin := project.ContractedAmount.Sub(costs.TotalActualCosts)
	projectedMargin := project.ContractedAmount.Sub(costs.AdjustedEstimatedCosts)
	originalMargin := project.ContractedAmount.Sub(project.OriginalEstimatedCosts)

	currentPercent := money.Percent(currentMargin, project.ContractedAmount)

	return domain.MarginFigures{
		CurrentMargin:          currentMargin,
		CurrentMarginPercent:   currentPercent,
		ProjectedMargin:        projectedMargin,
		ProjectedMarginPercent: money.Percent(projectedMargin, project.ContractedAmount),
		OriginalMargin:         originalMargin,
		MarginEfficiency:       money.Ratio(currentPercent, project.TargetMargin),
		MarginAtRisk:           currentMargin.LessThan(project.MinimumMargin),
	}
}
