package reconcile_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleSnapshot is the worked example: 100k contract, one plain 20k
// materials expense, one 30k split parent allocated 60/40 between this
// project and another.
func exampleSnapshot() domain.ProjectSnapshot {
	return domain.ProjectSnapshot{
		Project: domain.Project{
			ProjectID:              "p1",
			ProjectType:            domain.FullProject,
			Status:                 domain.StatusInProgress,
			ContractedAmount:       dec("100000"),
			OriginalEstimatedCosts: dec("60000"),
			ContingencyAmount:      dec("10000"),
			TargetMargin:           dec("40"),
			MinimumMargin:          dec("20000"),
		},
		Expenses: []domain.Expense{
			directExpense("e1", "p1", "20000", domain.CategoryMaterials),
			splitParent("e2", "30000", domain.CategoryMaterials),
		},
		Splits: []domain.ExpenseSplit{
			split("s1", "e2", "p1", "18000"),
			split("s2", "e2", "p2", "12000"),
		},
		ChangeOrders: []domain.ChangeOrder{
			changeOrder("co1", "p1", "5000", domain.ChangeOrderApproved),
			changeOrder("co2", "p1", "10000", domain.ChangeOrderPending),
		},
	}
}

func TestReconcile_WorkedExample(t *testing.T) {
	report := reconcile.Reconcile(exampleSnapshot(), reconcile.DefaultThresholds())

	f := report.Financials
	assert.Empty(t, report.Warnings)
	assert.True(t, f.Costs.TotalActualCosts.Equal(dec("38000")), "total_actual_costs = %s", f.Costs.TotalActualCosts)
	assert.True(t, f.Costs.AdjustedEstimatedCosts.Equal(dec("65000")), "adjusted_estimated_costs = %s", f.Costs.AdjustedEstimatedCosts)
	assert.True(t, f.Margins.CurrentMargin.Equal(dec("62000")), "current_margin = %s", f.Margins.CurrentMargin)
	assert.True(t, f.Margins.CurrentMarginPercent.Equal(dec("62")), "current_margin_percent = %s", f.Margins.CurrentMarginPercent)
	assert.True(t, f.Margins.ProjectedMargin.Equal(dec("35000")), "projected_margin = %s", f.Margins.ProjectedMargin)
}

func TestReconcile_Idempotence(t *testing.T) {
	snap := exampleSnapshot()
	thresholds := reconcile.DefaultThresholds()

	first, err := json.Marshal(reconcile.Reconcile(snap, thresholds))
	require.NoError(t, err)
	second, err := json.Marshal(reconcile.Reconcile(snap, thresholds))
	require.NoError(t, err)

	assert.Equal(t, first, second, "recomputation over an unchanged snapshot must be byte-identical")
}

func TestReconcile_ApprovedChangeOrderMonotonicity(t *testing.T) {
	snap := exampleSnapshot()
	before := reconcile.Reconcile(snap, reconcile.DefaultThresholds()).Financials

	snap.ChangeOrders = append(snap.ChangeOrders,
		changeOrder("co3", "p1", "2500", domain.ChangeOrderApproved))
	after := reconcile.Reconcile(snap, reconcile.DefaultThresholds()).Financials

	assert.True(t, after.Margins.ProjectedMargin.LessThan(before.Margins.ProjectedMargin),
		"positive approved cost impact strictly decreases projected margin")
	assert.True(t, after.Costs.AdjustedEstimatedCosts.GreaterThanOrEqual(before.Costs.AdjustedEstimatedCosts),
		"adjusted estimated costs never decrease")
}

func TestReconcile_ZeroContractGuards(t *testing.T) {
	snap := exampleSnapshot()
	snap.Project.ContractedAmount = dec("0")

	f := reconcile.Reconcile(snap, reconcile.DefaultThresholds()).Financials

	assert.True(t, f.Margins.CurrentMarginPercent.IsZero())
	assert.True(t, f.Margins.ProjectedMarginPercent.IsZero())
	assert.True(t, f.Margins.MarginEfficiency.IsZero())
}

func TestReconcile_EstimateReviewWarning(t *testing.T) {
	snap := exampleSnapshot()
	auto := true
	snap.Estimates = []domain.Estimate{
		{EstimateID: "est1", ProjectID: "p1", VersionNumber: 1, IsAutoGenerated: &auto},
		{EstimateID: "est2", ProjectID: "p1", VersionNumber: 1}, // legacy record, flag absent
	}

	report := reconcile.Reconcile(snap, reconcile.DefaultThresholds())

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, domain.WarnEstimateNeedsReview, report.Warnings[0].Code)
	assert.Equal(t, "est2", report.Warnings[0].RecordID)
	assert.False(t, report.Financials.HasRealEstimate,
		"placeholders and unreviewed estimates are not real estimates")
}

func TestReconcileAll_PreservesInputOrder(t *testing.T) {
	snaps := make([]domain.ProjectSnapshot, 0, 20)
	for i := 0; i < 20; i++ {
		snap := exampleSnapshot()
		snap.Project.ProjectID = fmt.Sprintf("p%03d", i)
		snaps = append(snaps, snap)
	}

	reports := reconcile.ReconcileAll(snaps, reconcile.DefaultThresholds())

	require.Len(t, reports, 20)
	for i, r := range reports {
		assert.Equal(t, fmt.Sprintf("p%03d", i), r.Financials.ProjectID)
	}
}

func TestReconcileAll_BadProjectDoesNotAbortOthers(t *testing.T) {
	good := exampleSnapshot()

	bad := exampleSnapshot()
	bad.Project.ProjectID = "p-bad"
	bad.Splits[0].ProjectID = "p-bad"
	bad.Splits[0].SplitAmount = dec("25000") // drifts from the 30000 parent

	reports := reconcile.ReconcileAll([]domain.ProjectSnapshot{good, bad}, reconcile.DefaultThresholds())

	require.Len(t, reports, 2)
	assert.Empty(t, reports[0].Warnings)
	assert.NotEmpty(t, reports[1].Warnings)
	assert.True(t, reports[0].Financials.Costs.TotalActualCosts.Equal(dec("38000")),
		"the healthy project still reconciles correctly")
}

func TestSummarizePortfolio(t *testing.T) {
	active := exampleSnapshot()

	estimating := exampleSnapshot()
	estimating.Project.ProjectID = "p2"
	estimating.Project.Status = domain.StatusEstimating

	atRisk := exampleSnapshot()
	atRisk.Project.ProjectID = "p3"
	atRisk.Project.MinimumMargin = dec("90000")

	reports := reconcile.ReconcileAll(
		[]domain.ProjectSnapshot{active, estimating, atRisk},
		reconcile.DefaultThresholds(),
	)
	summary := reconcile.SummarizePortfolio(reports)

	assert.Equal(t, 3, summary.ProjectCount)
	assert.Equal(t, 2, summary.ActiveProjectCount, "estimating projects are not active")
	assert.True(t, summary.ActiveContractValue.Equal(dec("200000")))
	assert.True(t, summary.TotalActualCosts.Equal(dec("114000")))
	assert.Equal(t, 1, summary.ProjectsAtRisk)
}
