package reconcile_test

import (
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/core/reconcile"
	"github.com/stretchr/testify/assert"
)

func TestCalculateMargins(t *testing.T) {
	tests := []struct {
		name                string
		project             domain.Project
		costs               domain.CostTotals
		wantCurrent         string
		wantCurrentPercent  string
		wantProjected       string
		wantOriginal        string
		wantEfficiency      string
		wantAtRisk          bool
	}{
		{
			name: "healthy project",
			project: domain.Project{
				ProjectID:              "p1",
				ContractedAmount:       dec("100000"),
				OriginalEstimatedCosts: dec("60000"),
				TargetMargin:           dec("40"),
				MinimumMargin:          dec("20000"),
			},
			costs: domain.CostTotals{
				TotalActualCosts:       dec("38000"),
				AdjustedEstimatedCosts: dec("65000"),
			},
			wantCurrent:        "62000",
			wantCurrentPercent: "62",
			wantProjected:      "35000",
			wantOriginal:       "40000",
			wantEfficiency:     "155",
			wantAtRisk:         false,
		},
		{
			name: "margin below minimum is at risk",
			project: domain.Project{
				ProjectID:        "p1",
				ContractedAmount: dec("50000"),
				MinimumMargin:    dec("10000"),
			},
			costs: domain.CostTotals{
				TotalActualCosts:       dec("45000"),
				AdjustedEstimatedCosts: dec("45000"),
			},
			wantCurrent:        "5000",
			wantCurrentPercent: "10",
			wantProjected:      "5000",
			wantOriginal:       "50000",
			wantEfficiency:     "0",
			wantAtRisk:         true,
		},
		{
			name: "zero contract value yields zero percentages",
			project: domain.Project{
				ProjectID:        "p1",
				ContractedAmount: dec("0"),
				TargetMargin:     dec("35"),
			},
			costs: domain.CostTotals{
				TotalActualCosts:       dec("1200"),
				AdjustedEstimatedCosts: dec("800"),
			},
			wantCurrent:        "-1200",
			wantCurrentPercent: "0",
			wantProjected:      "-800",
			wantOriginal:       "0",
			wantEfficiency:     "0",
			wantAtRisk:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.CalculateMargins(tt.project, tt.costs)

			assert.True(t, got.CurrentMargin.Equal(dec(tt.wantCurrent)), "current_margin = %s", got.CurrentMargin)
			assert.True(t, got.CurrentMarginPercent.Equal(dec(tt.wantCurrentPercent)), "current_margin_percent = %s", got.CurrentMarginPercent)
			assert.True(t, got.ProjectedMargin.Equal(dec(tt.wantProjected)), "projected_margin = %s", got.ProjectedMargin)
			assert.True(t, got.OriginalMargin.Equal(dec(tt.wantOriginal)), "original_margin = %s", got.OriginalMargin)
			assert.True(t, got.MarginEfficiency.Equal(dec(tt.wantEfficiency)), "margin_efficiency = %s", got.MarginEfficiency)
			assert.Equal(t, tt.wantAtRisk, got.MarginAtRisk)
		})
	}
}
