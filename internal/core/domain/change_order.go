package domain

import "github.com/shopspring/decimal"

// ChangeOrderStatus is the approval state of a change order. Only approved
// change orders affect a project's adjusted estimated costs and contingency.
type ChangeOrderStatus string

const (
	ChangeOrderPending  ChangeOrderStatus = "PENDING"
	ChangeOrderApproved ChangeOrderStatus = "APPROVED"
	ChangeOrderRejected ChangeOrderStatus = "REJECTED"
)

// ChangeOrder is a scoped modification to a project's contract.
type ChangeOrder struct {
	ChangeOrderID             string            `json:"changeOrderID"` // Primary Key (e.g., UUID)
	ProjectID                 string            `json:"projectID"`     // FK -> Project (Not Null)
	Description               string            `json:"description"`
	Status                    ChangeOrderStatus `json:"status"`
	Amount                    decimal.Decimal   `json:"amount"`
	ClientAmount              decimal.Decimal   `json:"client_amount"`
	CostImpact                decimal.Decimal   `json:"cost_impact"`
	IncludesContingency       bool              `json:"includes_contingency"`
	ContingencyBilledToClient decimal.Decimal   `json:"contingency_billed_to_client"`
	AuditFields
}

// MarginImpact is the change order's effect on project margin: what the
// client pays minus what the change costs.
func (co ChangeOrder) MarginImpact() decimal.Decimal {
	return co.ClientAmount.Sub(co.CostImpact)
}

// IsApproved reports whether the change order participates in cost and
// contingency aggregation.
func (co ChangeOrder) IsApproved() bool {
	return co.Status == ChangeOrderApproved
}
