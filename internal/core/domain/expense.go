package domain

import "github.com/shopspring/decimal"

// ExpenseCategory classifies a ledger transaction. Internal labor is tracked
// separately so internally performed work can be reported without conflating
// it with externally purchased cost.
type ExpenseCategory string

const (
	CategoryMaterials     ExpenseCategory = "MATERIALS"
	CategoryLaborInternal ExpenseCategory = "LABOR_INTERNAL"
	CategorySubcontractor ExpenseCategory = "SUBCONTRACTOR"
	CategoryEquipment     ExpenseCategory = "EQUIPMENT"
	CategoryPermits       ExpenseCategory = "PERMITS"
	CategoryOther         ExpenseCategory = "OTHER"
)

// ApprovalStatus is the review state of an expense. Approval is a display
// concern: pending expenses still count toward costs unless a caller filters
// explicitly.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ExpenseKind is the single source of truth for split handling. A direct
// expense is a cost against its own project; a split parent is a synthetic
// container that exists only to be allocated through child splits and must
// never itself be counted.
type ExpenseKind string

const (
	ExpenseDirect      ExpenseKind = "DIRECT"
	ExpenseSplitParent ExpenseKind = "SPLIT_PARENT"
)

// Expense is a ledger transaction against a project.
type Expense struct {
	ExpenseID      string          `json:"expenseID"` // Primary Key (e.g., UUID)
	ProjectID      string          `json:"projectID"` // FK -> Project; may be empty for split parents
	Kind           ExpenseKind     `json:"kind"`
	Category       ExpenseCategory `json:"category"`
	ApprovalStatus ApprovalStatus  `json:"approval_status"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	AuditFields
}

// ExpenseSplit allocates a portion of a parent expense's amount to a target
// project. A parent's splits must sum to its amount within rounding tolerance.
type ExpenseSplit struct {
	SplitID         string          `json:"splitID"`          // Primary Key (e.g., UUID)
	ParentExpenseID string          `json:"parentExpenseID"`  // FK -> Expense (Not Null)
	ProjectID       string          `json:"projectID"`        // FK -> Project (Not Null)
	SplitAmount     decimal.Decimal `json:"split_amount"`
	SplitPercentage decimal.Decimal `json:"split_percentage"` // informational
}

// IsInternalLabor reports whether the expense belongs to the internal labor
// category.
func (e Expense) IsInternalLabor() bool {
	return e.Category == CategoryLaborInternal
}
