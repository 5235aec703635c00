package reconcile

import (
	"sort"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
)

// SelectQuoteCostBases picks the authoritative cost basis per category: the
// lowest qualifying vendor quote. Declined and still-unpriced quotes never
// qualify. Results are ordered by category so repeated runs over the same
// snapshot are byte-identical.
func SelectQuoteCostBases(quotes []domain.Quote) []domain.QuoteCostBasis {
	lowest := make(map[domain.ExpenseCategory]domain.Quote)
	for _, q := range quotes {
		if !q.Qualifies() {
			continue
		}
		best, seen := lowest[q.Category]
		if !seen || q.QuoteAmount.LessThan(best.QuoteAmount) {
			lowest[q.Category] = q
		}
	}

	categories := make([]string, 0, len(lowest))
	for c := range lowest {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)

	bases := make([]domain.QuoteCostBasis, 0, len(categories))
	for _, c := range categories {
		q := lowest[domain.ExpenseCategory(c)]
		bases = append(bases, domain.QuoteCostBasis{
			Category:     q.Category,
			QuoteID:      q.QuoteID,
			VendorName:   q.VendorName,
			QuoteAmount:  q.QuoteAmount,
			ClientAmount: q.ClientAmount,
		})
	}
	return bases
}
