// Package reconcile implements the project financial reconciliation engine:
// normalization of split expenses, cost aggregation, margin and contingency
// math, and budget-health classification. Every stage is a pure function of
// an immutable snapshot, so recomputation is deterministic and safe to run
// concurrently across independent projects.
package reconcile

import (
	"github.com/hartbuilt/project_finance_app/internal/apperrors"
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Option adjusts normalization behavior.
type Option func(*options)

type options struct {
	approvalFilter *domain.ApprovalStatus
}

// WithApprovalStatus restricts normalization to expenses with the given
// approval status. Without this option approval status never affects cost
// inclusion: pending does not mean excluded.
func WithApprovalStatus(status domain.ApprovalStatus) Option {
	return func(o *options) {
		o.approvalFilter = &status
	}
}

// Normalize resolves split-parent/child expense records into a canonical,
// non-duplicating list of cost contributions. A split parent's own amount is
// never emitted; only its children's split amounts are. Parents whose splits
// drift from the parent amount beyond one minor unit are excluded entirely
// and reported as split integrity warnings.
func Normalize(expenses []domain.Expense, splits []domain.ExpenseSplit, opts ...Option) ([]domain.CostContribution, []domain.ReconciliationWarning) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	splitsByParent := make(map[string][]domain.ExpenseSplit, len(splits))
	knownParents := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		knownParents[e.ExpenseID] = true
	}

	contributions := make([]domain.CostContribution, 0, len(expenses)+len(splits))
	warnings := make([]domain.ReconciliationWarning, 0)

	for _, s := range splits {
		if !knownParents[s.ParentExpenseID] {
			warnings = append(warnings, domain.ReconciliationWarning{
				Code:      domain.WarnMalformedRecord,
				ProjectID: s.ProjectID,
				RecordID:  s.SplitID,
				Message:   apperrors.ErrMalformedRecord.Error() + ": split references missing parent expense " + s.ParentExpenseID,
			})
			continue
		}
		splitsByParent[s.ParentExpenseID] = append(splitsByParent[s.ParentExpenseID], s)
	}

	for _, e := range expenses {
		if o.approvalFilter != nil && e.ApprovalStatus != *o.approvalFilter {
			continue
		}

		switch e.Kind {
		case domain.ExpenseSplitParent:
			children := splitsByParent[e.ExpenseID]
			if len(children) == 0 {
				// Orphaned container: must not leak into any project's totals.
				warnings = append(warnings, domain.ReconciliationWarning{
					Code:     domain.WarnOrphanedSplitParent,
					RecordID: e.ExpenseID,
					Message:  "split-parent expense has no associated splits; container amount discarded",
					Delta:    e.Amount,
				})
				continue
			}

			splitTotal := decimal.Zero
			for _, c := range children {
				splitTotal = splitTotal.Add(c.SplitAmount)
			}
			if !money.WithinTolerance(splitTotal, e.Amount) {
				integrityErr := &apperrors.SplitIntegrityError{
					ExpenseID:    e.ExpenseID,
					ParentAmount: e.Amount,
					SplitTotal:   splitTotal,
				}
				warnings = append(warnings, domain.ReconciliationWarning{
					Code:     domain.WarnSplitIntegrity,
					RecordID: e.ExpenseID,
					Message:  integrityErr.Error(),
					Delta:    integrityErr.Drift(),
				})
				continue
			}

			for _, c := range children {
				contributions = append(contributions, domain.CostContribution{
					ProjectID:       c.ProjectID,
					SourceExpenseID: e.ExpenseID,
					Amount:          c.SplitAmount,
					Category:        e.Category,
					IsInternalLabor: e.IsInternalLabor(),
					FromSplit:       true,
				})
			}

		default:
			if e.ProjectID == "" {
				warnings = append(warnings, domain.ReconciliationWarning{
					Code:     domain.WarnMalformedRecord,
					RecordID: e.ExpenseID,
					Message:  apperrors.ErrMalformedRecord.Error() + ": direct expense has no project",
					Delta:    e.Amount,
				})
				continue
			}
			contributions = append(contributions, domain.CostContribution{
				ProjectID:       e.ProjectID,
				SourceExpenseID: e.ExpenseID,
				Amount:          e.Amount,
				Category:        e.Category,
				IsInternalLabor: e.IsInternalLabor(),
			})
		}
	}

	return contributions, warnings
}
