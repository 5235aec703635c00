package reconcile

import (
	"fmt"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Thresholds are the caller-supplied alert settings. They mirror the
// product's user-adjustable budget alert threshold and are never hard-coded
// into the evaluator.
type Thresholds struct {
	// BudgetAlertPercent flags projects whose adjusted estimated costs drift
	// from the original estimate by more than this percentage.
	BudgetAlertPercent decimal.Decimal
}

// DefaultThresholds returns the product defaults: a 10% budget alert.
func DefaultThresholds() Thresholds {
	return Thresholds{BudgetAlertPercent: decimal.NewFromInt(10)}
}

// EvaluateBudget classifies budget-health conditions from the outputs of the
// aggregation, margin, and contingency stages. Pure classification: no side
// effects, callers decide how to surface each condition.
func EvaluateBudget(project domain.Project, costs domain.CostTotals, margins domain.MarginFigures, contingency domain.ContingencyFigures, thresholds Thresholds) []domain.BudgetCondition {
	conditions := make([]domain.BudgetCondition, 0, 4)

	if margins.MarginAtRisk {
		conditions = append(conditions, domain.BudgetCondition{
			Code:      domain.ConditionMarginAtRisk,
			ProjectID: project.ProjectID,
			Actual:    margins.CurrentMargin,
			Limit:     project.MinimumMargin,
			Detail:    "current margin below minimum margin",
		})
	}

	if contingency.RawAvailableContingency.IsNegative() {
		conditions = append(conditions, domain.BudgetCondition{
			Code:      domain.ConditionContingencyOverrun,
			ProjectID: project.ProjectID,
			Actual:    contingency.ContingencyUsed,
			Limit:     contingency.ContingencyAmount,
			Detail:    "contingency used exceeds contingency amount",
		})
	}

	if project.IsWorkOrder() && project.DoNotExceed.IsPositive() &&
		costs.TotalActualCosts.GreaterThan(project.DoNotExceed) {
		conditions = append(conditions, domain.BudgetCondition{
			Code:      domain.ConditionDNEExceeded,
			ProjectID: project.ProjectID,
			Actual:    costs.TotalActualCosts,
			Limit:     project.DoNotExceed,
			Detail:    "actual costs exceed do-not-exceed ceiling",
		})
	}

	variance := costVariancePercent(project.OriginalEstimatedCosts, costs.AdjustedEstimatedCosts)
	if variance.GreaterThan(thresholds.BudgetAlertPercent) {
		conditions = append(conditions, domain.BudgetCondition{
			Code:      domain.ConditionCostVarianceHigh,
			ProjectID: project.ProjectID,
			Actual:    variance,
			Limit:     thresholds.BudgetAlertPercent,
			Detail: fmt.Sprintf("estimated cost variance %s%% exceeds alert threshold %s%%",
				variance.StringFixed(1), thresholds.BudgetAlertPercent.StringFixed(1)),
		})
	}

	return conditions
}

// costVariancePercent is |adjusted - original| / original * 100, zero when
// there is no original estimate to vary from.
func costVariancePercent(original, adjusted decimal.Decimal) decimal.Decimal {
	return money.Percent(adjusted.Sub(original).Abs(), original)
}
