package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMalformedRecord indicates a snapshot record that cannot participate in
// reconciliation, such as a split referencing a missing parent expense.
var ErrMalformedRecord = errors.New("malformed record")

// SplitIntegrityError reports a split-parent expense whose child split amounts
// do not reconcile to the parent amount within rounding tolerance. It is a
// data-quality error: the engine surfaces it alongside results instead of
// silently correcting the drift.
type SplitIntegrityError struct {
	ExpenseID    string
	ParentAmount decimal.Decimal
	SplitTotal   decimal.Decimal
}

func (e *SplitIntegrityError) Error() string {
	return fmt.Sprintf("expense %s: split amounts total %s but parent amount is %s",
		e.ExpenseID, e.SplitTotal.String(), e.ParentAmount.String())
}

// Drift returns the signed difference between the split total and the parent amount.
func (e *SplitIntegrityError) Drift() decimal.Decimal {
	return e.SplitTotal.Sub(e.ParentAmount)
}
