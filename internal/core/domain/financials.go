package domain

import "github.com/shopspring/decimal"

// ProjectSnapshot is the immutable set of records a reconciliation run reads.
// The engine never mutates a snapshot; callers needing fresh figures re-fetch
// and recompute.
type ProjectSnapshot struct {
	Project      Project        `json:"project"`
	Estimates    []Estimate     `json:"estimates"`
	Quotes       []Quote        `json:"quotes"`
	Expenses     []Expense      `json:"expenses"`
	Splits       []ExpenseSplit `json:"splits"`
	ChangeOrders []ChangeOrder  `json:"change_orders"`
}

// CostContribution is one normalized cost against a project: either a direct
// expense or a child split of a split-parent container.
type CostContribution struct {
	ProjectID       string          `json:"projectID"`
	SourceExpenseID string          `json:"sourceExpenseID"`
	Amount          decimal.Decimal `json:"amount"`
	Category        ExpenseCategory `json:"category"`
	IsInternalLabor bool            `json:"is_internal_labor"`
	FromSplit       bool            `json:"from_split"`
}

// CostTotals are the aggregated cost figures for a project.
type CostTotals struct {
	TotalActualCosts       decimal.Decimal `json:"total_actual_costs"`
	AdjustedEstimatedCosts decimal.Decimal `json:"adjusted_estimated_costs"`
	InternalLaborCosts     decimal.Decimal `json:"internal_labor_costs"`
	// PendingCostImpact is informational only: cost impact of change orders
	// not yet approved. Never summed into adjusted estimated costs.
	PendingCostImpact decimal.Decimal `json:"pending_cost_impact"`
}

// MarginFigures are the margin outputs derived from contract value and costs.
type MarginFigures struct {
	CurrentMargin          decimal.Decimal `json:"current_margin"`
	CurrentMarginPercent   decimal.Decimal `json:"current_margin_percent"`
	ProjectedMargin        decimal.Decimal `json:"projected_margin"`
	ProjectedMarginPercent decimal.Decimal `json:"projected_margin_percent"`
	OriginalMargin         decimal.Decimal `json:"original_margin"`
	MarginEfficiency       decimal.Decimal `json:"margin_efficiency"`
	MarginAtRisk           bool            `json:"margin_at_risk"`
}

// ContingencyFigures are the contingency buffer outputs. AvailableContingency
// is floored at zero for display; RawAvailableContingency retains the deficit
// for audit when the buffer is overdrawn.
type ContingencyFigures struct {
	ContingencyAmount              decimal.Decimal `json:"contingency_amount"`
	ContingencyUsed                decimal.Decimal `json:"contingency_used"`
	AvailableContingency           decimal.Decimal `json:"available_contingency"`
	RawAvailableContingency        decimal.Decimal `json:"raw_available_contingency"`
	ContingencyUtilizationPercent  decimal.Decimal `json:"contingency_utilization_percent"`
	ContingencyBilledToClientTotal decimal.Decimal `json:"contingency_billed_to_client_total"`
}

// QuoteCostBasis is the authoritative cost basis for one category: the lowest
// qualifying vendor quote.
type QuoteCostBasis struct {
	Category     ExpenseCategory `json:"category"`
	QuoteID      string          `json:"quoteID"`
	VendorName   string          `json:"vendor_name"`
	QuoteAmount  decimal.Decimal `json:"quote_amount"`
	ClientAmount decimal.Decimal `json:"client_amount"`
}

// ConditionCode tags a budget-health classification. Conditions are pure
// outputs; callers decide how to surface them.
type ConditionCode string

const (
	ConditionMarginAtRisk       ConditionCode = "MARGIN_AT_RISK"
	ConditionContingencyOverrun ConditionCode = "CONTINGENCY_OVERRUN"
	ConditionDNEExceeded        ConditionCode = "DNE_EXCEEDED"
	ConditionCostVarianceHigh   ConditionCode = "COST_VARIANCE_HIGH"
)

// BudgetCondition is one flagged budget-health state with the figures that
// triggered it.
type BudgetCondition struct {
	Code      ConditionCode   `json:"code"`
	ProjectID string          `json:"projectID"`
	Actual    decimal.Decimal `json:"actual"`
	Limit     decimal.Decimal `json:"limit"`
	Detail    string          `json:"detail"`
}

// WarningCode tags a non-fatal reconciliation finding.
type WarningCode string

const (
	WarnSplitIntegrity      WarningCode = "SPLIT_INTEGRITY"
	WarnContingencyOverrun  WarningCode = "CONTINGENCY_OVERRUN"
	WarnOrphanedSplitParent WarningCode = "ORPHANED_SPLIT_PARENT"
	WarnEstimateNeedsReview WarningCode = "ESTIMATE_NEEDS_REVIEW"
	WarnMalformedRecord     WarningCode = "MALFORMED_RECORD"
)

// ReconciliationWarning is collected and returned alongside normal results:
// one project's bad data must never abort computation for the portfolio.
type ReconciliationWarning struct {
	Code      WarningCode     `json:"code"`
	ProjectID string          `json:"projectID"`
	RecordID  string          `json:"recordID"` // offending expense/estimate/etc.
	Message   string          `json:"message"`
	Delta     decimal.Decimal `json:"delta"` // signed drift or deficit, when applicable
}

// ProjectFinancials is the complete derived-value record for one project.
type ProjectFinancials struct {
	ProjectID        string             `json:"projectID"`
	Status           ProjectStatus      `json:"status"`
	ContractedAmount decimal.Decimal    `json:"contracted_amount"`
	Costs            CostTotals         `json:"costs"`
	Margins          MarginFigures      `json:"margins"`
	Contingency      ContingencyFigures `json:"contingency"`
	QuoteCostBases   []QuoteCostBasis   `json:"quote_cost_basis"`
	Conditions       []BudgetCondition  `json:"conditions"`
	HasRealEstimate  bool               `json:"has_real_estimate"`
}

// ReconciliationReport pairs the derived figures with the warnings collected
// while producing them.
type ReconciliationReport struct {
	Financials ProjectFinancials       `json:"financials"`
	Warnings   []ReconciliationWarning `json:"warnings"`
}

// PortfolioSummary is the cross-project rollup. Active contract value counts
// only approved and in-progress projects; warning and condition tallies cover
// every project in the snapshot set.
type PortfolioSummary struct {
	ProjectCount         int             `json:"project_count"`
	ActiveProjectCount   int             `json:"active_project_count"`
	ActiveContractValue  decimal.Decimal `json:"active_contract_value"`
	TotalActualCosts     decimal.Decimal `json:"total_actual_costs"`
	TotalCurrentMargin   decimal.Decimal `json:"total_current_margin"`
	TotalProjectedMargin decimal.Decimal `json:"total_projected_margin"`
	ProjectsAtRisk       int             `json:"projects_at_risk"`
	ProjectsOverBudget   int             `json:"projects_over_budget"`
	WarningCount         int             `json:"warning_count"`
}
