package domain

import "github.com/shopspring/decimal"

// QuoteStatus is the lifecycle state of a vendor quote.
type QuoteStatus string

const (
	QuoteRequested QuoteStatus = "REQUESTED"
	QuoteReceived  QuoteStatus = "RECEIVED"
	QuoteAccepted  QuoteStatus = "ACCEPTED"
	QuoteDeclined  QuoteStatus = "DECLINED"
)

// Quote is a vendor's priced response to some or all of an estimate's line
// items. Client amount may include markup over the vendor's quote amount.
// Quotes select the authoritative cost basis per category; they are never
// aggregated directly into expenses.
type Quote struct {
	QuoteID      string          `json:"quoteID"`    // Primary Key (e.g., UUID)
	ProjectID    string          `json:"projectID"`  // FK -> Project (Not Null)
	EstimateID   string          `json:"estimateID"` // FK -> Estimate (Nullable)
	VendorName   string          `json:"vendor_name"`
	Category     ExpenseCategory `json:"category"`
	Status       QuoteStatus     `json:"status"`
	QuoteAmount  decimal.Decimal `json:"quote_amount"`
	ClientAmount decimal.Decimal `json:"client_amount"`
	MarkupAmount decimal.Decimal `json:"markup_amount"`
	AuditFields
}

// Qualifies reports whether the quote can serve as a cost basis: it must have
// been priced by the vendor and not declined.
func (q Quote) Qualifies() bool {
	return q.Status == QuoteReceived || q.Status == QuoteAccepted
}
