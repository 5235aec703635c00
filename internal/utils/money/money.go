package money

import "github.com/shopspring/decimal"

// MinorUnitTolerance is one cent: the maximum accumulated rounding drift
// allowed when child split amounts are reconciled against a parent amount.
var MinorUnitTolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// RoundCents rounds a monetary value to currency precision (2 fractional digits).
// Accumulation always happens at full precision; this is for persisted or
// displayed figures only.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent computes (part / whole) * 100 with an explicit zero-denominator
// policy: a non-positive whole yields zero, never a division error. Every
// percentage in the reconciliation engine goes through this guard.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Ratio computes (num / den) * 100 for two percentages, with the same
// zero-denominator policy as Percent.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// WithinTolerance reports whether two amounts agree within the minor-unit
// tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MinorUnitTolerance)
}

// FloorZero clamps a negative amount to zero. Used for display figures where
// the raw negative value is reported separately as an overrun.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sum adds a slice of amounts at full precision.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
