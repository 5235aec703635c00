package domain

import "github.com/shopspring/decimal"

// EstimateStatus is the lifecycle state of an estimate revision.
type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "DRAFT"
	EstimateSent     EstimateStatus = "SENT"
	EstimateApproved EstimateStatus = "APPROVED"
	EstimateRejected EstimateStatus = "REJECTED"
)

// Estimate is one revision in a project's estimate chain. Revisions link back
// through ParentEstimateID; only the latest version of a chain participates in
// aggregation. Auto-generated placeholders are excluded from "has a real
// estimate" checks.
type Estimate struct {
	EstimateID         string          `json:"estimateID"` // Primary Key (e.g., UUID)
	ProjectID          string          `json:"projectID"`  // FK -> Project (Not Null)
	Status             EstimateStatus  `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	ContingencyPercent decimal.Decimal `json:"contingency_percent"`
	VersionNumber      int             `json:"version_number"`
	ParentEstimateID   string          `json:"parent_estimate_id"` // empty for the root revision
	// IsAutoGenerated marks a placeholder created by the system rather than a
	// user. Nil means the record predates the flag; such estimates are flagged
	// for manual review instead of trusting the legacy heuristic.
	IsAutoGenerated *bool      `json:"is_auto_generated"`
	LineItems       []LineItem `json:"line_items"`
	AuditFields
}

// LineItem is a single priced row of an estimate.
type LineItem struct {
	LineItemID   string          `json:"lineItemID"`
	EstimateID   string          `json:"estimateID"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	SortOrder    int             `json:"sort_order"`
}

// Total is the client-facing price of the line.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.PricePerUnit)
}

// TotalCost is the internal cost of the line.
func (li LineItem) TotalCost() decimal.Decimal {
	return li.Quantity.Mul(li.CostPerUnit)
}

// Markup is the line's margin contribution: total minus total cost.
func (li LineItem) Markup() decimal.Decimal {
	return li.Total().Sub(li.TotalCost())
}

// IsPlaceholder reports whether the estimate is a system-generated
// placeholder. An estimate missing the explicit flag is NOT treated as a
// placeholder here; NeedsReview surfaces it instead.
func (e Estimate) IsPlaceholder() bool {
	return e.IsAutoGenerated != nil && *e.IsAutoGenerated
}

// NeedsReview reports whether the estimate predates the is_auto_generated
// flag and therefore cannot be classified without manual review.
func (e Estimate) NeedsReview() bool {
	return e.IsAutoGenerated == nil
}

// ChainRootID returns the identity of the estimate's revision chain: the root
// estimate's ID for revisions, or the estimate's own ID for roots.
func (e Estimate) ChainRootID() string {
	if e.ParentEstimateID != "" {
		return e.ParentEstimateID
	}
	return e.EstimateID
}

// CurrentEstimates reduces a project's estimates to the latest version of
// each revision chain. Older revisions never participate in aggregation.
func CurrentEstimates(estimates []Estimate) []Estimate {
	latest := make(map[string]Estimate)
	order := make([]string, 0, len(estimates))
	for _, e := range estimates {
		root := e.ChainRootID()
		prev, seen := latest[root]
		if !seen {
			order = append(order, root)
			latest[root] = e
			continue
		}
		if e.VersionNumber > prev.VersionNumber {
			latest[root] = e
		}
	}

	current := make([]Estimate, 0, len(order))
	for _, root := range order {
		current = append(current, latest[root])
	}
	return current
}

// HasRealEstimate reports whether any current estimate is user-authored
// rather than an auto-generated placeholder.
func HasRealEstimate(estimates []Estimate) bool {
	for _, e := range CurrentEstimates(estimates) {
		if !e.IsPlaceholder() && !e.NeedsReview() {
			return true
		}
	}
	return false
}
