package dto

import (
	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// PortfolioSummaryResponse is the cross-project rollup response.
type PortfolioSummaryResponse struct {
	ProjectCount         int               `json:"project_count"`
	ActiveProjectCount   int               `json:"active_project_count"`
	ActiveContractValue  decimal.Decimal   `json:"active_contract_value"`
	TotalActualCosts     decimal.Decimal   `json:"total_actual_costs"`
	TotalCurrentMargin   decimal.Decimal   `json:"total_current_margin"`
	TotalProjectedMargin decimal.Decimal   `json:"total_projected_margin"`
	ProjectsAtRisk       int               `json:"projects_at_risk"`
	ProjectsOverBudget   int               `json:"projects_over_budget"`
	Warnings             []WarningResponse `json:"warnings"`
}

// ToPortfolioSummaryResponse converts a portfolio rollup and its collected
// warnings to a DTO response.
func ToPortfolioSummaryResponse(summary *domain.PortfolioSummary, warnings []domain.ReconciliationWarning) PortfolioSummaryResponse {
	response := PortfolioSummaryResponse{
		ProjectCount:         summary.ProjectCount,
		ActiveProjectCount:   summary.ActiveProjectCount,
		ActiveContractValue:  money.RoundCents(summary.ActiveContractValue),
		TotalActualCosts:     money.RoundCents(summary.TotalActualCosts),
		TotalCurrentMargin:   money.RoundCents(summary.TotalCurrentMargin),
		TotalProjectedMargin: money.RoundCents(summary.TotalProjectedMargin),
		ProjectsAtRisk:       summary.ProjectsAtRisk,
		ProjectsOverBudget:   summary.ProjectsOverBudget,
		Warnings:             make([]WarningResponse, len(warnings)),
	}

	for i, w := range warnings {
		response.Warnings[i] = WarningResponse{
			Code:     string(w.Code),
			RecordID: w.RecordID,
			Message:  w.Message,
		}
	}

	return response
}
