package reconcile

import (
	"sync"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
)

// Reconcile computes the complete derived-value record for one project from
// an immutable snapshot. It is a pure function: the same snapshot and
// thresholds always produce the same report, and nothing in the snapshot is
// mutated.
func Reconcile(snap domain.ProjectSnapshot, thresholds Thresholds, opts ...Option) domain.ReconciliationReport {
	contributions, warnings := Normalize(snap.Expenses, snap.Splits, opts...)

	costs := AggregateCosts(snap.Project, contributions, snap.ChangeOrders)
	margins := CalculateMargins(snap.Project, costs)

	contingency, contingencyWarnings := TrackContingency(snap.Project, snap.ChangeOrders)
	warnings = append(warnings, contingencyWarnings...)

	for _, e := range domain.CurrentEstimates(snap.Estimates) {
		if e.NeedsReview() {
			warnings = append(warnings, domain.ReconciliationWarning{
				Code:      domain.WarnEstimateNeedsReview,
				ProjectID: snap.Project.ProjectID,
				RecordID:  e.EstimateID,
				Message:   "estimate predates the auto-generated flag; classify manually",
			})
		}
	}

	financials := domain.ProjectFinancials{
		ProjectID:        snap.Project.ProjectID,
		Status:           snap.Project.Status,
		ContractedAmount: snap.Project.ContractedAmount,
		Costs:            costs,
		Margins:          margins,
		Contingency:      contingency,
		QuoteCostBases:   SelectQuoteCostBases(snap.Quotes),
		Conditions:       EvaluateBudget(snap.Project, costs, margins, contingency, thresholds),
		HasRealEstimate:  domain.HasRealEstimate(snap.Estimates),
	}

	return domain.ReconciliationReport{Financials: financials, Warnings: warnings}
}

// ReconcileAll reconciles independent projects concurrently. Projects are
// independent aggregation domains, so each goroutine writes only its own
// indexed slot and the output order always matches the input order. One
// project's warnings never block computation for the rest.
func ReconcileAll(snaps []domain.ProjectSnapshot, thresholds Thresholds, opts ...Option) []domain.ReconciliationReport {
	reports := make([]domain.ReconciliationReport, len(snaps))

	var wg sync.WaitGroup
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i] = Reconcile(snaps[i], thresholds, opts...)
		}(i)
	}
	wg.Wait()

	return reports
}
