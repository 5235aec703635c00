package reconcile_test

import (
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func directExpense(id, projectID, amount string, category domain.ExpenseCategory) domain.Expense {
	return domain.Expense{
		ExpenseID:      id,
		ProjectID:      projectID,
		Kind:           domain.ExpenseDirect,
		Category:       category,
		ApprovalStatus: domain.ApprovalApproved,
		Amount:         dec(amount),
	}
}

func splitParent(id, amount string, category domain.ExpenseCategory) domain.Expense {
	return domain.Expense{
		ExpenseID:      id,
		Kind:           domain.ExpenseSplitParent,
		Category:       category,
		ApprovalStatus: domain.ApprovalApproved,
		Amount:         dec(amount),
	}
}

func split(id, parentID, projectID, amount string) domain.ExpenseSplit {
	return domain.ExpenseSplit{
		SplitID:         id,
		ParentExpenseID: parentID,
		ProjectID:       projectID,
		SplitAmount:     dec(amount),
	}
}

func TestNormalize_DirectExpense(t *testing.T) {
	contributions, warnings := reconcile.Normalize(
		[]domain.Expense{directExpense("e1", "p1", "20000", domain.CategoryMaterials)},
		nil,
	)

	require.Len(t, contributions, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "p1", contributions[0].ProjectID)
	assert.Equal(t, "e1", contributions[0].SourceExpenseID)
	assert.True(t, contributions[0].Amount.Equal(dec("20000")))
	assert.False(t, contributions[0].FromSplit)
}

func TestNormalize_SplitParentEmitsChildrenOnly(t *testing.T) {
	expenses := []domain.Expense{splitParent("e1", "30000", domain.CategoryMaterials)}
	splits := []domain.ExpenseSplit{
		split("s1", "e1", "p1", "18000"),
		split("s2", "e1", "p2", "12000"),
	}

	contributions, warnings := reconcile.Normalize(expenses, splits)

	require.Len(t, contributions, 2)
	assert.Empty(t, warnings)

	// The parent's 30000 never appears directly; only the children do.
	for _, c := range contributions {
		assert.True(t, c.FromSplit)
		assert.Equal(t, "e1", c.SourceExpenseID)
		assert.Equal(t, domain.CategoryMaterials, c.Category)
		assert.False(t, c.Amount.Equal(dec("30000")))
	}
	assert.True(t, contributions[0].Amount.Add(contributions[1].Amount).Equal(dec("30000")))
}

func TestNormalize_SplitIntegrityViolation(t *testing.T) {
	tests := []struct {
		name        string
		splits      []domain.ExpenseSplit
		wantWarning bool
	}{
		{
			name: "exact reconciliation",
			splits: []domain.ExpenseSplit{
				split("s1", "e1", "p1", "60.00"),
				split("s2", "e1", "p2", "40.00"),
			},
			wantWarning: false,
		},
		{
			name: "one minor unit of drift tolerated",
			splits: []domain.ExpenseSplit{
				split("s1", "e1", "p1", "33.33"),
				split("s2", "e1", "p2", "33.33"),
				split("s3", "e1", "p3", "33.33"),
			},
			wantWarning: false,
		},
		{
			name: "drift beyond tolerance rejected",
			splits: []domain.ExpenseSplit{
				split("s1", "e1", "p1", "60.00"),
				split("s2", "e1", "p2", "35.00"),
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := []domain.Expense{splitParent("e1", "100.00", domain.CategoryMaterials)}
			contributions, warnings := reconcile.Normalize(expenses, tt.splits)

			if tt.wantWarning {
				// Violations are surfaced, and nothing from the parent leaks
				// into any project's contributions.
				require.Len(t, warnings, 1)
				assert.Equal(t, domain.WarnSplitIntegrity, warnings[0].Code)
				assert.Equal(t, "e1", warnings[0].RecordID)
				assert.True(t, warnings[0].Delta.Equal(dec("-5.00")))
				assert.Empty(t, contributions)
			} else {
				assert.Empty(t, warnings)
				assert.Len(t, contributions, len(tt.splits))
			}
		})
	}
}

func TestNormalize_OrphanedSplitParent(t *testing.T) {
	contributions, warnings := reconcile.Normalize(
		[]domain.Expense{splitParent("e1", "5000", domain.CategoryEquipment)},
		nil,
	)

	assert.Empty(t, contributions)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarnOrphanedSplitParent, warnings[0].Code)
	assert.True(t, warnings[0].Delta.Equal(dec("5000")))
}

func TestNormalize_SplitReferencingMissingParent(t *testing.T) {
	contributions, warnings := reconcile.Normalize(
		nil,
		[]domain.ExpenseSplit{split("s1", "ghost", "p1", "100")},
	)

	assert.Empty(t, contributions)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarnMalformedRecord, warnings[0].Code)
	assert.Equal(t, "s1", warnings[0].RecordID)
}

func TestNormalize_PendingExpensesIncludedByDefault(t *testing.T) {
	pending := directExpense("e1", "p1", "100", domain.CategoryMaterials)
	pending.ApprovalStatus = domain.ApprovalPending
	approved := directExpense("e2", "p1", "200", domain.CategoryMaterials)

	contributions, _ := reconcile.Normalize([]domain.Expense{pending, approved}, nil)
	assert.Len(t, contributions, 2, "pending does not mean excluded")

	// Explicit filtering is opt-in for callers.
	contributions, _ = reconcile.Normalize(
		[]domain.Expense{pending, approved},
		nil,
		reconcile.WithApprovalStatus(domain.ApprovalApproved),
	)
	require.Len(t, contributions, 1)
	assert.Equal(t, "e2", contributions[0].SourceExpenseID)
}

func TestNormalize_InternalLaborFlagged(t *testing.T) {
	contributions, _ := reconcile.Normalize(
		[]domain.Expense{directExpense("e1", "p1", "750", domain.CategoryLaborInternal)},
		nil,
	)

	require.Len(t, contributions, 1)
	assert.True(t, contributions[0].IsInternalLabor)
}
