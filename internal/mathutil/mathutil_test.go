package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(1), Pow(10, 0).Int64())
	a.Equal(int64(10), Pow(10, 1).Int64())
	a.Equal(int64(1024), Pow(2, 10).Int64())
	a.Equal(int64(62*62), Pow(62, 2).Int64())
	a.Equal("1000000000000000000000000000000", Pow(10, 30).String())
}

func TestPowRat(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, PowRat(10, 2).Cmp(big.NewRat(100, 1)))
	a.Equal(0, PowRat(10, -2).Cmp(big.NewRat(1, 100)))
	a.Equal(0, PowRat(3, 0).Cmp(big.NewRat(1, 1)))
	a.Equal(0, PowRat(2, -10).Cmp(big.NewRat(1, 1024)))
}

func TestLog2(t *testing.T) {
	a := assert.New(t)
	for base := 2; base <= 62; base++ {
		a.InDelta(math.Log2(float64(base)), Log2(base), 1e-12, "base %d", base)
	}
	a.Equal(1.0, Log2(2))
	a.Equal(4.0, Log2(16))
}

func TestRoundTripDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		prec uint
		base int
		want int
	}{
		{53, 2, 54},
		{53, 10, 17},
		{53, 16, 15},
		{2, 10, 2},
		{64, 10, 21},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.want, RoundTripDigits(test.prec, test.base))
		})
	}
}

func TestAbs(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, Abs(-5))
	a.Equal(5, Abs(5))
	a.Equal(0, Abs(0))
}
