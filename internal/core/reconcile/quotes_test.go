package reconcile_test

import (
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(id string, category domain.ExpenseCategory, amount string, status domain.QuoteStatus) domain.Quote {
	return domain.Quote{
		QuoteID:     id,
		ProjectID:   "p1",
		VendorName:  "vendor-" + id,
		Category:    category,
		Status:      status,
		QuoteAmount: dec(amount),
	}
}

func TestSelectQuoteCostBases(t *testing.T) {
	quotes := []domain.Quote{
		quote("q1", domain.CategoryMaterials, "9000", domain.QuoteReceived),
		quote("q2", domain.CategoryMaterials, "8500", domain.QuoteAccepted),
		quote("q3", domain.CategoryMaterials, "7000", domain.QuoteDeclined),  // declined never qualifies
		quote("q4", domain.CategoryMaterials, "6000", domain.QuoteRequested), // not yet priced
		quote("q5", domain.CategorySubcontractor, "15000", domain.QuoteReceived),
	}

	bases := reconcile.SelectQuoteCostBases(quotes)

	require.Len(t, bases, 2)

	// Ordered by category for deterministic output.
	assert.Equal(t, domain.CategoryMaterials, bases[0].Category)
	assert.Equal(t, "q2", bases[0].QuoteID, "lowest qualifying quote wins")
	assert.True(t, bases[0].QuoteAmount.Equal(dec("8500")))

	assert.Equal(t, domain.CategorySubcontractor, bases[1].Category)
	assert.Equal(t, "q5", bases[1].QuoteID)
}

func TestSelectQuoteCostBases_NoQualifyingQuotes(t *testing.T) {
	bases := reconcile.SelectQuoteCostBases([]domain.Quote{
		quote("q1", domain.CategoryMaterials, "7000", domain.QuoteDeclined),
	})
	assert.Empty(t, bases)
}
