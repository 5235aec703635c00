package domain_test

import (
	"testing"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCurrentEstimates_PicksLatestVersionPerChain(t *testing.T) {
	estimates := []domain.Estimate{
		{EstimateID: "a1", VersionNumber: 1, IsAutoGenerated: boolPtr(false)},
		{EstimateID: "a2", ParentEstimateID: "a1", VersionNumber: 2, IsAutoGenerated: boolPtr(false)},
		{EstimateID: "a3", ParentEstimateID: "a1", VersionNumber: 3, IsAutoGenerated: boolPtr(false)},
		{EstimateID: "b1", VersionNumber: 1, IsAutoGenerated: boolPtr(false)},
	}

	current := domain.CurrentEstimates(estimates)

	require.Len(t, current, 2)
	assert.Equal(t, "a3", current[0].EstimateID, "only the newest revision of a chain participates")
	assert.Equal(t, "b1", current[1].EstimateID)
}

func TestHasRealEstimate(t *testing.T) {
	tests := []struct {
		name      string
		estimates []domain.Estimate
		want      bool
	}{
		{
			name:      "no estimates",
			estimates: nil,
			want:      false,
		},
		{
			name: "only an auto-generated placeholder",
			estimates: []domain.Estimate{
				{EstimateID: "e1", VersionNumber: 1, IsAutoGenerated: boolPtr(true)},
			},
			want: false,
		},
		{
			name: "user-authored estimate",
			estimates: []domain.Estimate{
				{EstimateID: "e1", VersionNumber: 1, IsAutoGenerated: boolPtr(false)},
			},
			want: true,
		},
		{
			name: "legacy estimate without the flag is not trusted",
			estimates: []domain.Estimate{
				{EstimateID: "e1", VersionNumber: 1, Status: domain.EstimateApproved},
			},
			want: false,
		},
		{
			name: "superseded real estimate replaced by placeholder revision",
			estimates: []domain.Estimate{
				{EstimateID: "e1", VersionNumber: 1, IsAutoGenerated: boolPtr(false)},
				{EstimateID: "e2", ParentEstimateID: "e1", VersionNumber: 2, IsAutoGenerated: boolPtr(true)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.HasRealEstimate(tt.estimates))
		})
	}
}

func TestLineItemMarkup(t *testing.T) {
	li := domain.LineItem{
		Quantity:     decimal.RequireFromString("10"),
		CostPerUnit:  decimal.RequireFromString("25.50"),
		PricePerUnit: decimal.RequireFromString("40.00"),
	}

	assert.True(t, li.Total().Equal(decimal.RequireFromString("400.00")))
	assert.True(t, li.TotalCost().Equal(decimal.RequireFromString("255.00")))
	assert.True(t, li.Markup().Equal(decimal.RequireFromString("145.00")))
}
