package dto

import (
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// FinancialsQueryRequest carries the caller-adjustable reconciliation inputs.
type FinancialsQueryRequest struct {
	// AlertThreshold overrides the configured budget alert percentage.
	AlertThreshold *float64 `form:"alert_threshold" binding:"omitempty,gte=0,lte=100"`
	// ApprovalStatus restricts aggregation to expenses with this approval
	// status. Absent means approval status does not affect inclusion.
	ApprovalStatus string `form:"approval_status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// CostTotalsResponse mirrors the engine's aggregated cost figures. The field
// names are a compatibility contract with downstream consumers.
type CostTotalsResponse struct {
	TotalActualCosts       decimal.Decimal `json:"total_actual_costs"`
	AdjustedEstimatedCosts decimal.Decimal `json:"adjusted_estimated_costs"`
	InternalLaborCosts     decimal.Decimal `json:"internal_labor_costs"`
	PendingCostImpact      decimal.Decimal `json:"pending_cost_impact"`
}

// MarginsResponse mirrors the engine's margin figures.
type MarginsResponse struct {
	CurrentMargin          decimal.Decimal `json:"current_margin"`
	CurrentMarginPercent   decimal.Decimal `json:"current_margin_percent"`
	ProjectedMargin        decimal.Decimal `json:"projected_margin"`
	ProjectedMarginPercent decimal.Decimal `json:"projected_margin_percent"`
	OriginalMargin         decimal.Decimal `json:"original_margin"`
	MarginEfficiency       decimal.Decimal `json:"margin_efficiency"`
	MarginAtRisk           bool            `json:"margin_at_risk"`
}

// ContingencyResponse mirrors the engine's contingency figures.
type ContingencyResponse struct {
	ContingencyAmount             decimal.Decimal `json:"contingency_amount"`
	ContingencyUsed               decimal.Decimal `json:"contingency_used"`
	AvailableContingency          decimal.Decimal `json:"available_contingency"`
	ContingencyUtilizationPercent decimal.Decimal `json:"contingency_utilization_percent"`
	IsOverrun                     bool            `json:"is_overrun"`
}

// QuoteCostBasisResponse is the authoritative cost basis for one category.
type QuoteCostBasisResponse struct {
	Category     string          `json:"category"`
	QuoteID      string          `json:"quoteID"`
	VendorName   string          `json:"vendor_name"`
	QuoteAmount  decimal.Decimal `json:"quote_amount"`
	ClientAmount decimal.Decimal `json:"client_amount"`
}

// ConditionResponse is one flagged budget-health condition.
type ConditionResponse struct {
	Code   string          `json:"code"`
	Actual decimal.Decimal `json:"actual"`
	Limit  decimal.Decimal `json:"limit"`
	Detail string          `json:"detail"`
}

// WarningResponse is one non-fatal reconciliation finding.
type WarningResponse struct {
	Code     string `json:"code"`
	RecordID string `json:"recordID,omitempty"`
	Message  string `json:"message"`
}

// ProjectFinancialsResponse is the complete derived-value record for one
// project, with warnings riding alongside the figures.
type ProjectFinancialsResponse struct {
	ProjectID        string                   `json:"projectID"`
	Status           string                   `json:"status"`
	ContractedAmount decimal.Decimal          `json:"contracted_amount"`
	Costs            CostTotalsResponse       `json:"costs"`
	Margins          MarginsResponse          `json:"margins"`
	Contingency      ContingencyResponse      `json:"contingency"`
	QuoteCostBases   []QuoteCostBasisResponse `json:"quote_cost_basis"`
	Conditions       []ConditionResponse      `json:"conditions"`
	HasRealEstimate  bool                     `json:"has_real_estimate"`
	Warnings         []WarningResponse        `json:"warnings"`
}

// ToProjectFinancialsResponse converts an engine report to a DTO response.
// Monetary figures are rounded to currency precision and percentages to two
// places here, at the display boundary only.
func ToProjectFinancialsResponse(report *domain.ReconciliationReport) ProjectFinancialsResponse {
	f := report.Financials

	response := ProjectFinancialsResponse{
		ProjectID:        f.ProjectID,
		Status:           string(f.Status),
		ContractedAmount: money.RoundCents(f.ContractedAmount),
		Costs: CostTotalsResponse{
			TotalActualCosts:       money.RoundCents(f.Costs.TotalActualCosts),
			AdjustedEstimatedCosts: money.RoundCents(f.Costs.AdjustedEstimatedCosts),
			InternalLaborCosts:     money.RoundCents(f.Costs.InternalLaborCosts),
			PendingCostImpact:      money.RoundCents(f.Costs.PendingCostImpact),
		},
		Margins: MarginsResponse{
			CurrentMargin:          money.RoundCents(f.Margins.CurrentMargin),
			CurrentMarginPercent:   f.Margins.CurrentMarginPercent.Round(2),
			ProjectedMargin:        money.RoundCents(f.Margins.ProjectedMargin),
			ProjectedMarginPercent: f.Margins.ProjectedMarginPercent.Round(2),
			OriginalMargin:         money.RoundCents(f.Margins.OriginalMargin),
			MarginEfficiency:       f.Margins.MarginEfficiency.Round(2),
			MarginAtRisk:           f.Margins.MarginAtRisk,
		},
		Contingency: ContingencyResponse{
			ContingencyAmount:             money.RoundCents(f.Contingency.ContingencyAmount),
			ContingencyUsed:               money.RoundCents(f.Contingency.ContingencyUsed),
			AvailableContingency:          money.RoundCents(f.Contingency.AvailableContingency),
			ContingencyUtilizationPercent: f.Contingency.ContingencyUtilizationPercent.Round(2),
			IsOverrun:                     f.Contingency.RawAvailableContingency.IsNegative(),
		},
		QuoteCostBases:  make([]QuoteCostBasisResponse, len(f.QuoteCostBases)),
		Conditions:      make([]ConditionResponse, len(f.Conditions)),
		HasRealEstimate: f.HasRealEstimate,
		Warnings:        make([]WarningResponse, len(report.Warnings)),
	}

	for i, b := range f.QuoteCostBases {
		response.QuoteCostBases[i] = QuoteCostBasisResponse{
			Category:     string(b.Category),
			QuoteID:      b.QuoteID,
			VendorName:   b.VendorName,
			QuoteAmount:  money.RoundCents(b.QuoteAmount),
			ClientAmount: money.RoundCents(b.ClientAmount),
		}
	}
	for i, c := range f.Conditions {
		response.Conditions[i] = ConditionResponse{
			Code:   string(c.Code),
			Actual: c.Actual.Round(2),
			Limit:  c.Limit.Round(2),
			Detail: c.Detail,
		}
	}
	for i, w := range report.Warnings {
		response.Warnings[i] = WarningResponse{
			Code:     string(w.Code),
			RecordID: w.RecordID,
			Message:  w.Message,
		}
	}

	return response
}
