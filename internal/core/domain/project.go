package domain

import "github.com/shopspring/decimal"

// ProjectType distinguishes full projects from lightweight work orders.
type ProjectType string

const (
	FullProject ProjectType = "FULL_PROJECT"
	WorkOrder   ProjectType = "WORK_ORDER"
)

// ProjectStatus is the lifecycle state of a project. Estimating through
// in-progress is the main path; on-hold and cancelled are side branches.
type ProjectStatus string

const (
	StatusEstimating ProjectStatus = "ESTIMATING"
	StatusQuoted     ProjectStatus = "QUOTED"
	StatusApproved   ProjectStatus = "APPROVED"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusComplete   ProjectStatus = "COMPLETE"
	StatusOnHold     ProjectStatus = "ON_HOLD"
	StatusCancelled  ProjectStatus = "CANCELLED"
)

// Project is the aggregation root for financial reconciliation. Monetary
// fields are fixed-point decimals; contracted amount is fixed at contract
// signing, adjusted estimated costs move only through approved change orders.
type Project struct {
	ProjectID              string          `json:"projectID"` // Primary Key (e.g., UUID)
	Name                   string          `json:"name"`
	ProjectType            ProjectType     `json:"project_type"`
	Status                 ProjectStatus   `json:"status"`
	ContractedAmount       decimal.Decimal `json:"contracted_amount"`
	OriginalEstimatedCosts decimal.Decimal `json:"original_estimated_costs"`
	AdjustedEstimatedCosts decimal.Decimal `json:"adjusted_estimated_costs"`
	ContingencyAmount      decimal.Decimal `json:"contingency_amount"`
	ContingencyPercent     decimal.Decimal `json:"contingency_percent"`
	ContingencyUsed        decimal.Decimal `json:"contingency_used"`
	TargetMargin           decimal.Decimal `json:"target_margin"`  // percent
	MinimumMargin          decimal.Decimal `json:"minimum_margin"` // absolute amount
	DoNotExceed            decimal.Decimal `json:"do_not_exceed"`  // work orders only
	AuditFields
}

// IsWorkOrder reports whether the project is a work order with a
// do-not-exceed ceiling instead of a full estimate/contract cycle.
func (p Project) IsWorkOrder() bool {
	return p.ProjectType == WorkOrder
}

// CountsTowardActivePortfolio reports whether a project in this status
// participates in portfolio-level rollups such as active contract value.
func (s ProjectStatus) CountsTowardActivePortfolio() bool {
	return s == StatusApproved || s == StatusInProgress
}
