// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// Error is the error class of this package.
var Error = errs.Class("bigfloat")

var intOne = big.NewInt(1)

func checkBase(base int) {
	if base != 0 && (base < 2 || base > 62) {
		panic(fmt.Sprintf("bigfloat: base %d out of range [2, 62]", base))
	}
}

// FromString parses s in the given base at the default precision, rounding
// to nearest. Base 0 detects 0b/0o/0x prefixes and defaults to 10. A base
// outside [2, 62] and 0 panics; a malformed string is reported through the
// error, never through a partially-set value.
func FromString(s string, base int) (*Float, error) {
	f := New()
	if !f.SetString(s, base) {
		f.Release()
		return nil, Error.New("malformed number %q in base %d", s, base)
	}
	return f, nil
}

// SetString sets x to the value of s, rounding to nearest, and reports
// whether s was fully valid for the given base. On failure x's numeric
// content is unspecified, but its precision is untouched and the value
// stays usable.
func (x *Float) SetString(s string, base int) bool {
	return x.SetStringMode(s, base, ToNearest)
}

// SetStringMode is SetString with an explicit rounding mode.
//
// Bases 2, 8, 10 and 16, and the detecting base 0, follow the grammar of
// big.Float.Parse: an optional sign, a mantissa with an optional point, and
// an optional exponent, 'e' scaling by a power of ten and 'p' by a power of
// two. Any other base in [2, 62] reads mantissa digits of that base, with
// letter case significant only above base 36, and an optional '@' exponent
// scaling by a power of the base; for bases up to 10, 'e' is accepted in
// place of '@'. "nan" and "inf" are accepted in any base and case.
func (x *Float) SetStringMode(s string, base int, mode RoundingMode) bool {
	checkBase(base)
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return false
	}
	body, neg := s, false
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	if len(body) == 0 {
		return false
	}
	switch strings.ToLower(body) {
	case "nan":
		x.setNaN()
		return true
	case "inf", "infinity":
		x.SetInf(neg)
		return true
	}
	switch base {
	case 0, 2, 8, 10, 16:
		return x.setStringNative(s, base, mode)
	}
	return x.setStringSlow(body, base, neg, mode)
}

// setStringNative hands s to big.Float's scanner.
func (x *Float) setStringNative(s string, base int, mode RoundingMode) bool {
	st := x.mutable()
	st.f.SetMode(mode.BigMode())
	if _, _, err := st.f.Parse(s, base); err != nil {
		return false
	}
	st.nan = false
	return true
}

// setStringSlow covers the bases big.Float's scanner does not know. The
// mantissa digits go through big.Int, the fraction and exponent are folded
// into a rational, and the result is rounded in at x's precision.
func (x *Float) setStringSlow(body string, base int, neg bool, mode RoundingMode) bool {
	mant, exp := body, 0
	sep := strings.IndexByte(body, '@')
	if sep < 0 && base <= 10 {
		sep = strings.IndexAny(body, "eE")
	}
	if sep >= 0 {
		e, err := strconv.Atoi(body[sep+1:])
		if err != nil {
			return false
		}
		mant, exp = body[:sep], e
	}
	intPart, fracPart := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, fracPart = mant[:i], mant[i+1:]
	}
	digits := intPart + fracPart
	if len(digits) == 0 || strings.ContainsAny(digits, "+-.") {
		return false
	}
	m, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return false
	}
	r := new(big.Rat).SetInt(m)
	if shift := exp - len(fracPart); shift != 0 {
		r.Mul(r, mathutil.PowRat(base, shift))
	}
	if neg {
		r.Neg(r)
	}
	st := x.mutable()
	st.nan = false
	st.f.SetMode(mode.BigMode())
	st.f.SetRat(r)
	if neg && st.f.Sign() == 0 { // keep the sign of a zero
		st.f.Neg(st.f)
	}
	return true
}

// Text renders x in the given base with the given number of significant
// digits. digits == 0 requests enough digits for the value to read back
// exactly at the same precision; a negative count panics. Base 0 renders
// as base 10. The exponent marker, when one is needed, is 'e' for base 10,
// 'p' for bases 2, 8 and 16, and '@' otherwise, matching what SetString
// accepts for that base.
func (x *Float) Text(base, digits int, mode RoundingMode) string {
	checkBase(base)
	if base == 0 {
		base = 10
	}
	if digits < 0 {
		panic("bigfloat: negative digit count")
	}
	if x.IsNaN() {
		return "NaN"
	}
	if x.s.f.IsInf() {
		if x.s.f.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	}
	if x.s.f.Sign() == 0 {
		if x.s.f.Signbit() {
			return "-0"
		}
		return "0"
	}
	if digits == 0 {
		digits = mathutil.RoundTripDigits(x.Prec(), base)
	}
	return formatFinite(x.s.f, base, digits, mode)
}

// String returns x in base 10 with round-trip fidelity. It is shorthand for
// Text(10, 0, ToNearest).
func (x *Float) String() string {
	return x.Text(10, 0, ToNearest)
}

// formatFinite renders a nonzero finite f as `digits` significant base-b
// digits, rounding the last one per mode.
func formatFinite(f *big.Float, base, digits int, mode RoundingMode) string {
	r, _ := f.Rat(nil)
	neg := r.Sign() < 0
	r.Abs(r)
	e := ratExp(r, base)
	// scale so that exactly `digits` digits sit left of the point
	scaled := new(big.Rat).Mul(r, mathutil.PowRat(base, digits-e))
	rem := new(big.Int)
	n, _ := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), rem)
	if roundDigitsUp(n, rem, scaled.Denom(), mode, neg) {
		n.Add(n, intOne)
		if n.Cmp(mathutil.Pow(base, digits)) == 0 { // carried into a new digit
			n = mathutil.Pow(base, digits-1)
			e++
		}
	}
	ds := n.Text(base)
	if pad := digits - len(ds); pad > 0 {
		ds = strings.Repeat("0", pad) + ds
	}
	return assemble(ds, e, base, neg)
}

// ratExp returns e such that base**(e-1) <= r < base**e, for r > 0.
func ratExp(r *big.Rat, base int) int {
	var t big.Float
	t.SetPrec(64)
	t.SetRat(r)
	e2 := t.MantExp(nil)
	e := int(float64(e2-1)/mathutil.Log2(base)) + 1
	for r.Cmp(mathutil.PowRat(base, e)) >= 0 {
		e++
	}
	for r.Cmp(mathutil.PowRat(base, e-1)) < 0 {
		e--
	}
	return e
}

// roundDigitsUp decides whether the truncated digit string q gets bumped,
// given the discarded tail rem/den and the sign of the value.
func roundDigitsUp(q, rem, den *big.Int, mode RoundingMode, neg bool) bool {
	if rem.Sign() == 0 {
		return false
	}
	switch mode {
	case ToZero, Faithful:
		return false
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	default: // ToNearest
		switch new(big.Int).Lsh(rem, 1).Cmp(den) {
		case -1:
			return false
		case 1:
			return true
		default: // tie, to even
			return q.Bit(0) == 1
		}
	}
}

// assemble lays out the digit string ds, which denotes 0.ds × base**e.
func assemble(ds string, e, base int, neg bool) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case 0 < e && e <= len(ds):
		b.WriteString(ds[:e])
		if frac := strings.TrimRight(ds[e:], "0"); len(frac) > 0 {
			b.WriteByte('.')
			b.WriteString(frac)
		}
	case -4 < e && e <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -e))
		b.WriteString(strings.TrimRight(ds, "0"))
	default:
		b.WriteByte(ds[0])
		if frac := strings.TrimRight(ds[1:], "0"); len(frac) > 0 {
			b.WriteByte('.')
			b.WriteString(frac)
		}
		b.WriteString(expSuffix(base, e-1))
	}
	return b.String()
}

// expSuffix renders the exponent so that SetString reads it back in the
// same base: a power of ten for base 10, a binary exponent for the
// power-of-two bases, a power of the base after '@' for the rest.
func expSuffix(base, e int) string {
	switch base {
	case 10:
		return "e" + strconv.Itoa(e)
	case 2, 8, 16:
		return "p" + strconv.Itoa(e*int(mathutil.Log2(base)))
	default:
		return "@" + strconv.Itoa(e)
	}
}
