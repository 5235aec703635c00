package reconcile_test

import (
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/stretchr/testify/assert"
)

func changeOrder(id, projectID, costImpact string, status domain.ChangeOrderStatus) domain.ChangeOrder {
	return domain.ChangeOrder{
		ChangeOrderID: id,
		ProjectID:     projectID,
		Status:        status,
		CostImpact:    dec(costImpact),
	}
}

func TestAggregateCosts_SumsContributionsForProject(t *testing.T) {
	project := domain.Project{ProjectID: "p1", OriginalEstimatedCosts: dec("60000")}
	contributions := []domain.CostContribution{
		{ProjectID: "p1", Amount: dec("20000"), Category: domain.CategoryMaterials},
		{ProjectID: "p1", Amount: dec("18000"), Category: domain.CategoryMaterials, FromSplit: true},
		{ProjectID: "p2", Amount: dec("12000"), Category: domain.CategoryMaterials, FromSplit: true},
	}

	totals := reconcile.AggregateCosts(project, contributions, nil)

	assert.True(t, totals.TotalActualCosts.Equal(dec("38000")),
		"other projects' contributions must not bleed in, got %s", totals.TotalActualCosts)
	assert.True(t, totals.InternalLaborCosts.IsZero())
}

func TestAggregateCosts_InternalLaborTrackedSeparately(t *testing.T) {
	project := domain.Project{ProjectID: "p1"}
	contributions := []domain.CostContribution{
		{ProjectID: "p1", Amount: dec("5000"), Category: domain.CategoryLaborInternal, IsInternalLabor: true},
		{ProjectID: "p1", Amount: dec("7000"), Category: domain.CategoryMaterials},
	}

	totals := reconcile.AggregateCosts(project, contributions, nil)

	assert.True(t, totals.TotalActualCosts.Equal(dec("12000")), "internal labor still counts toward the total")
	assert.True(t, totals.InternalLaborCosts.Equal(dec("5000")))
}

func TestAggregateCosts_OnlyApprovedChangeOrdersAdjustEstimate(t *testing.T) {
	project := domain.Project{ProjectID: "p1", OriginalEstimatedCosts: dec("60000")}
	changeOrders := []domain.ChangeOrder{
		changeOrder("co1", "p1", "5000", domain.ChangeOrderApproved),
		changeOrder("co2", "p1", "10000", domain.ChangeOrderPending),
		changeOrder("co3", "p1", "4000", domain.ChangeOrderRejected),
		changeOrder("co4", "p2", "9999", domain.ChangeOrderApproved),
	}

	totals := reconcile.AggregateCosts(project, nil, changeOrders)

	assert.True(t, totals.AdjustedEstimatedCosts.Equal(dec("65000")),
		"adjusted = original + approved impact only, got %s", totals.AdjustedEstimatedCosts)
	assert.True(t, totals.PendingCostImpact.Equal(dec("10000")),
		"pending impact is reported but never summed")
}
