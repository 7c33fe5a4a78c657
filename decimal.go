// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"github.com/shopspring/decimal"
)

// FromDecimal returns a Float at the default precision set to d.
func FromDecimal(d decimal.Decimal) *Float {
	f := New()
	f.SetDecimal(d, ToNearest)
	return f
}

// SetDecimal assigns d to x through its exact rational form and returns
// the ternary.
func (x *Float) SetDecimal(d decimal.Decimal, mode RoundingMode) int {
	return x.SetRat(d.Rat(), mode)
}

// Decimal converts x to a decimal with round-trip fidelity at x's
// precision. NaN and infinities have no decimal form and yield an error.
func (x *Float) Decimal() (decimal.Decimal, error) {
	if x.IsNaN() || x.s.f.IsInf() {
		return decimal.Decimal{}, Error.New("no decimal form for %s", x.Text(10, 0, ToNearest))
	}
	return decimal.NewFromString(x.Text(10, 0, ToNearest))
}
