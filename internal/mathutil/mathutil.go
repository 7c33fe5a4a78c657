package mathutil

import (
	"math"
	"math/big"
)

var log2Table = func() [63]float64 {
	var t [63]float64
	for b := 2; b < len(t); b++ {
		t[b] = math.Log2(float64(b))
	}
	return t
}()

// Pow returns base**exp as a big integer. exp must be non-negative.
func Pow(base, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}

// PowRat returns base**exp as a rational. exp may be negative.
func PowRat(base, exp int) *big.Rat {
	p := Pow(base, Abs(exp))
	if exp >= 0 {
		return new(big.Rat).SetInt(p)
	}
	return new(big.Rat).SetFrac(big.NewInt(1), p)
}

// Log2 returns log2(base) for 2 <= base <= 62.
func Log2(base int) float64 {
	return log2Table[base]
}

// RoundTripDigits returns the number of base-b digits sufficient for a value
// of the given binary precision to survive a format/parse round trip.
func RoundTripDigits(prec uint, base int) int {
	return int(math.Ceil(float64(prec)/Log2(base))) + 1
}

// Abs returns the absolute value of val.
func Abs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
