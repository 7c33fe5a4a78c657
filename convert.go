// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math"
	"math/big"
)

const (
	intSize = 32 << (^uint(0) >> 63) // 32 or 64

	maxInt  = 1<<(intSize-1) - 1
	minInt  = -1 << (intSize - 1)
	maxUint = 1<<intSize - 1
)

var floatHalf = big.NewFloat(0.5)

// Float64 converts x to a float64 under the given rounding mode, applied at
// 53 bits of significand. NaN, infinities and the sign of zero carry over.
// Overflow to an infinity and underflow to zero record the matching flags.
func (x *Float) Float64(mode RoundingMode) float64 {
	if x.IsNaN() {
		return math.NaN()
	}
	var t big.Float
	t.SetPrec(53)
	t.SetMode(mode.BigMode())
	t.Set(x.s.f)
	f, _ := t.Float64()
	if math.IsInf(f, 0) && !x.s.f.IsInf() {
		raise(FlagOverflow)
	} else if f == 0 && x.s.f.Sign() != 0 {
		raise(FlagUnderflow)
	}
	return f
}

// Frexp decomposes x into a fraction and an integral power of two, such that
// x == frac × 2**exp with 0.5 <= |frac| < 1 for nonzero finite x. Frexp of
// ±0 is (±0, 0); NaN and infinities carry over with a zero exponent.
func (x *Float) Frexp(mode RoundingMode) (frac float64, exp int) {
	if x.IsNaN() {
		return math.NaN(), 0
	}
	if x.s.f.IsInf() || x.s.f.Sign() == 0 {
		f, _ := x.s.f.Float64()
		return f, 0
	}
	var m big.Float
	exp = x.s.f.MantExp(&m)
	var t big.Float
	t.SetPrec(53)
	t.SetMode(mode.BigMode())
	t.Set(&m)
	frac, _ = t.Float64()
	if math.Abs(frac) >= 1 { // rounding carried into a new binary digit
		frac /= 2
		exp++
	}
	return frac, exp
}

// roundInt returns finite x rounded to an integer per mode.
func (x *Float) roundInt(mode RoundingMode) *big.Int {
	z, acc := x.s.f.Int(nil) // truncated towards zero
	if acc == big.Exact {
		return z
	}
	neg := x.s.f.Signbit()
	one := big.NewInt(1)
	away := func() {
		if neg {
			z.Sub(z, one)
		} else {
			z.Add(z, one)
		}
	}
	switch mode {
	case ToZero, Faithful:
	case ToPositiveInf:
		if !neg {
			z.Add(z, one)
		}
	case ToNegativeInf:
		if neg {
			z.Sub(z, one)
		}
	case AwayFromZero:
		away()
	default: // ToNearest
		var zf, fr big.Float
		zf.SetInt(z)
		fr.SetPrec(x.Prec() + 2)
		fr.Sub(x.s.f, &zf)
		fr.Abs(&fr)
		switch fr.Cmp(floatHalf) {
		case 1:
			away()
		case 0: // tie, to even
			if z.Bit(0) == 1 {
				away()
			}
		}
	}
	return z
}

// Int64 converts x to an int64 under the given rounding mode. An out-of-range
// magnitude saturates and records FlagOverflow; NaN converts to 0 and records
// FlagRange. Callers that need exactness should check FitsInt64 first.
func (x *Float) Int64(mode RoundingMode) int64 {
	if x.IsNaN() {
		raise(FlagRange)
		return 0
	}
	if x.s.f.IsInf() {
		raise(FlagOverflow)
		if x.s.f.Signbit() {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	z := x.roundInt(mode)
	if !z.IsInt64() {
		raise(FlagOverflow)
		if z.Sign() < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return z.Int64()
}

// Uint64 converts x to a uint64 under the given rounding mode, saturating
// out-of-range results as Int64 does. Negative values saturate to 0.
func (x *Float) Uint64(mode RoundingMode) uint64 {
	if x.IsNaN() {
		raise(FlagRange)
		return 0
	}
	if x.s.f.IsInf() {
		raise(FlagOverflow)
		if x.s.f.Signbit() {
			return 0
		}
		return math.MaxUint64
	}
	z := x.roundInt(mode)
	if z.Sign() < 0 {
		raise(FlagOverflow)
		return 0
	}
	if !z.IsUint64() {
		raise(FlagOverflow)
		return math.MaxUint64
	}
	return z.Uint64()
}

// Int converts x to a platform int, saturating like Int64.
func (x *Float) Int(mode RoundingMode) int {
	i := x.Int64(mode)
	if i > maxInt {
		raise(FlagOverflow)
		return maxInt
	}
	if i < minInt {
		raise(FlagOverflow)
		return minInt
	}
	return int(i)
}

// Uint converts x to a platform uint, saturating like Uint64.
func (x *Float) Uint(mode RoundingMode) uint {
	u := x.Uint64(mode)
	if u > maxUint {
		raise(FlagOverflow)
		return maxUint
	}
	return uint(u)
}

// intRepr returns x as a big integer if x is an exact integer.
func (x *Float) intRepr() (*big.Int, bool) {
	if x.IsNaN() || x.s.f.IsInf() || !x.s.f.IsInt() {
		return nil, false
	}
	z, _ := x.s.f.Int(nil)
	return z, true
}

// FitsInt reports whether x is an exact integer representable as an int.
// A fractional value, NaN, an infinity, or an out-of-range magnitude all
// yield false.
func (x *Float) FitsInt() bool {
	z, ok := x.intRepr()
	if !ok || !z.IsInt64() {
		return false
	}
	i := z.Int64()
	return i >= minInt && i <= maxInt
}

// FitsUint reports whether x is an exact integer representable as a uint.
func (x *Float) FitsUint() bool {
	z, ok := x.intRepr()
	return ok && z.IsUint64() && z.Uint64() <= maxUint
}

// FitsInt64 reports whether x is an exact integer representable as an int64.
func (x *Float) FitsInt64() bool {
	z, ok := x.intRepr()
	return ok && z.IsInt64()
}

// FitsUint64 reports whether x is an exact integer representable as a uint64.
func (x *Float) FitsUint64() bool {
	z, ok := x.intRepr()
	return ok && z.IsUint64()
}

// Rat returns the exact rational form of x. The second result is false for
// NaN and infinities, which have none.
func (x *Float) Rat() (*big.Rat, bool) {
	if x.IsNaN() || x.s.f.IsInf() {
		return nil, false
	}
	r, _ := x.s.f.Rat(nil)
	return r, true
}

// MarshalText implements encoding.TextMarshaler using the round-trip decimal
// form of x.
func (x *Float) MarshalText() ([]byte, error) {
	return []byte(x.Text(10, 0, ToNearest)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A zero-value receiver is
// initialized at the default precision.
func (x *Float) UnmarshalText(data []byte) error {
	if x.s == nil {
		x.s = newStorage(DefaultPrec())
	}
	if !x.SetString(string(data), 10) {
		return Error.New("malformed number %q", string(data))
	}
	return nil
}

// MarshalJSON marshals x as a decimal string, like "3.14".
func (x *Float) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.Text(10, 0, ToNearest) + `"`), nil
}

// UnmarshalJSON unmarshals a JSON string or bare number into x.
func (x *Float) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return x.UnmarshalText([]byte(s))
}
