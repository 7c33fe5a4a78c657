// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math"
	"math/big"
)

// Cmp compares x and y: -1 if x < y, 0 if they are equal, +1 if x > y.
// If either operand is NaN there is no meaningful answer: Cmp records
// FlagRange and returns 0. Callers that may see NaN should use the
// relational predicates, which implement the IEEE partial order.
func (x *Float) Cmp(y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		raise(FlagRange)
		return 0
	}
	return x.s.f.Cmp(y.s.f)
}

// CmpFloat64 compares x against a float64, with Cmp's NaN behavior.
func (x *Float) CmpFloat64(y float64) int {
	if x.IsNaN() || math.IsNaN(y) {
		raise(FlagRange)
		return 0
	}
	var t big.Float
	t.SetFloat64(y)
	return x.s.f.Cmp(&t)
}

// CmpBigInt compares x against a big integer, with Cmp's NaN behavior.
func (x *Float) CmpBigInt(y *big.Int) int {
	if x.IsNaN() {
		raise(FlagRange)
		return 0
	}
	var t big.Float
	t.SetInt(y)
	return x.s.f.Cmp(&t)
}

// CmpInt compares x against a platform integer, with Cmp's NaN behavior.
func (x *Float) CmpInt(y int) int {
	if x.IsNaN() {
		raise(FlagRange)
		return 0
	}
	var t big.Float
	t.SetInt64(int64(y))
	return x.s.f.Cmp(&t)
}

// Eq reports whether x == y. Any comparison involving NaN is false, even
// NaN against itself.
func (x *Float) Eq(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.s.f.Cmp(y.s.f) == 0
}

// Less reports whether x < y; false whenever an operand is NaN.
func (x *Float) Less(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.s.f.Cmp(y.s.f) < 0
}

// LessEq reports whether x <= y; false whenever an operand is NaN.
func (x *Float) LessEq(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.s.f.Cmp(y.s.f) <= 0
}

// Greater reports whether x > y; false whenever an operand is NaN.
func (x *Float) Greater(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.s.f.Cmp(y.s.f) > 0
}

// GreaterEq reports whether x >= y; false whenever an operand is NaN.
func (x *Float) GreaterEq(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.s.f.Cmp(y.s.f) >= 0
}

// EqBits reports whether x and y agree in their topmost bits of precision:
// both are rounded to that many bits, nearest to even, and compared exactly.
// NaN is never equal to anything. Panics if bits is outside
// [MinPrec, MaxPrec].
func (x *Float) EqBits(y *Float, bits uint) bool {
	checkPrec(bits)
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	var a, b big.Float
	a.SetPrec(bits)
	a.Set(x.s.f)
	b.SetPrec(bits)
	b.Set(y.s.f)
	return a.Cmp(&b) == 0
}

// Sign returns -1, 0, or +1 for a negative, zero, or positive x. The sign
// of a zero is 0 regardless of its sign bit; infinities report ±1. Sign of
// NaN is 0 and records FlagRange.
func (x *Float) Sign() int {
	if x.IsNaN() {
		raise(FlagRange)
		return 0
	}
	return x.s.f.Sign()
}

// Signbit reports whether x carries a negative sign bit. Unlike Sign it
// distinguishes -0 from +0.
func (x *Float) Signbit() bool {
	return !x.s.nan && x.s.f.Signbit()
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.s.nan
}

// IsInf reports whether x is an infinity of either sign.
func (x *Float) IsInf() bool {
	return !x.s.nan && x.s.f.IsInf()
}

// IsZero reports whether x is a zero of either sign.
func (x *Float) IsZero() bool {
	return !x.s.nan && x.s.f.Sign() == 0
}

// IsNegative reports whether x < 0; false for NaN and for -0.
func (x *Float) IsNegative() bool {
	return !x.s.nan && x.s.f.Sign() < 0
}

// IsPositive reports whether x > 0; false for NaN and for +0.
func (x *Float) IsPositive() bool {
	return !x.s.nan && x.s.f.Sign() > 0
}

// IsRegular reports whether x is finite: neither NaN nor an infinity.
// Zero is regular.
func (x *Float) IsRegular() bool {
	return !x.s.nan && !x.s.f.IsInf()
}
