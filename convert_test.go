// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    float64
		mode RoundingMode
	}{
		{3.14159, ToNearest},
		{-3.14159, ToNearest},
		{0, ToNearest},
		{42, ToZero},
		{math.MaxFloat64, ToNearest},
		{math.Inf(1), ToNearest},
		{math.Inf(-1), ToZero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.v, FromFloat64(test.v).Float64(test.mode))
		})
	}
}

func TestFloat64Rounding(t *testing.T) {
	a := assert.New(t)
	// 2**-60 above 1: at 53 bits the direction depends on the mode
	f := NewWithPrec(100)
	f.SetString("1.0000000000000000008673617379884035", 10)
	a.Equal(1.0, f.Float64(ToNearest))
	a.Equal(1.0, f.Float64(ToZero))
	a.Equal(1.0, f.Float64(ToNegativeInf))
	a.Greater(f.Float64(ToPositiveInf), 1.0)
	a.Greater(f.Float64(AwayFromZero), 1.0)
}

func TestFloat64SignedZero(t *testing.T) {
	a := assert.New(t)
	f := FromFloat64(math.Copysign(0, -1))
	a.True(f.IsZero())
	a.True(f.Signbit())
	v := f.Float64(ToNearest)
	a.Equal(0.0, v)
	a.True(math.Signbit(v))
}

func TestFloat64NaN(t *testing.T) {
	a := assert.New(t)
	a.True(math.IsNaN(New().Float64(ToNearest)))
}

func TestFloat64OverUnderflow(t *testing.T) {
	a := assert.New(t)
	ClearExceptionFlags()
	f, err := FromString("1e400", 10)
	a.NoError(err)
	a.True(math.IsInf(f.Float64(ToNearest), 1))
	a.True(ExceptionFlags().IsOverflow())

	ClearExceptionFlags()
	g, err := FromString("1e-400", 10)
	a.NoError(err)
	a.Equal(0.0, g.Float64(ToNearest))
	a.True(ExceptionFlags().IsUnderflow())
	ClearExceptionFlags()
}

func TestFrexp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    float64
		frac float64
		exp  int
	}{
		{1.5, 0.75, 1},
		{-1.5, -0.75, 1},
		{0.25, 0.5, -1},
		{1, 0.5, 1},
		{0, 0, 0},
		{math.Inf(1), math.Inf(1), 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			frac, exp := FromFloat64(test.v).Frexp(ToNearest)
			a.Equal(test.frac, frac)
			a.Equal(test.exp, exp)
		})
	}
	frac, exp := New().Frexp(ToNearest)
	a.True(math.IsNaN(frac))
	a.Equal(0, exp)
}

func TestFrexpMatchesStdlib(t *testing.T) {
	a := assert.New(t)
	for i, v := range []float64{3.14159, -2.5, 1e-10, 12345.6789} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			wantFrac, wantExp := math.Frexp(v)
			frac, exp := FromFloat64(v).Frexp(ToNearest)
			a.Equal(wantFrac, frac)
			a.Equal(wantExp, exp)
		})
	}
}

func TestInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    float64
		mode RoundingMode
		want int64
	}{
		{2.5, ToNearest, 2}, // ties to even
		{3.5, ToNearest, 4},
		{-2.5, ToNearest, -2},
		{-3.5, ToNearest, -4},
		{2.7, ToNearest, 3},
		{2.7, ToZero, 2},
		{2.7, ToPositiveInf, 3},
		{2.7, ToNegativeInf, 2},
		{2.7, AwayFromZero, 3},
		{-2.7, ToZero, -2},
		{-2.7, ToPositiveInf, -2},
		{-2.7, ToNegativeInf, -3},
		{-2.7, AwayFromZero, -3},
		{42, ToNearest, 42},
		{-42, AwayFromZero, -42},
		{0, ToNearest, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.want, FromFloat64(test.v).Int64(test.mode))
		})
	}
}

func TestInt64Saturation(t *testing.T) {
	a := assert.New(t)
	ClearExceptionFlags()
	f, _ := FromString("1e30", 10)
	a.Equal(int64(math.MaxInt64), f.Int64(ToNearest))
	a.True(ExceptionFlags().IsOverflow())

	ClearExceptionFlags()
	f.SetFloat64(math.Inf(-1), ToNearest)
	a.Equal(int64(math.MinInt64), f.Int64(ToNearest))
	a.True(ExceptionFlags().IsOverflow())

	ClearExceptionFlags()
	a.Equal(int64(0), New().Int64(ToNearest))
	a.True(ExceptionFlags().IsRange())
	ClearExceptionFlags()
}

func TestUint64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(3), FromFloat64(2.7).Uint64(ToNearest))
	a.Equal(uint64(2), FromFloat64(2.7).Uint64(ToZero))

	ClearExceptionFlags()
	a.Equal(uint64(0), FromFloat64(-1.5).Uint64(ToNearest))
	a.True(ExceptionFlags().IsOverflow())

	// -0.3 rounds to zero, which a uint can hold
	ClearExceptionFlags()
	a.Equal(uint64(0), FromFloat64(-0.3).Uint64(ToNearest))
	a.False(ExceptionFlags().IsOverflow())
	ClearExceptionFlags()
}

func TestIntUint(t *testing.T) {
	a := assert.New(t)
	a.Equal(3, FromFloat64(2.7).Int(ToNearest))
	a.Equal(-3, FromFloat64(-2.7).Int(AwayFromZero))
	a.Equal(uint(42), FromFloat64(42).Uint(ToNearest))
}

func TestFits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s              string
		i, u, i64, u64 bool
	}{
		{"42", true, true, true, true},
		{"-42", true, false, true, false},
		{"2.5", false, false, false, false},
		{"0", true, true, true, true},
		{"-0", true, true, true, true},
		{"9223372036854775807", true, true, true, true},  // MaxInt64
		{"9223372036854775808", false, true, false, true}, // MaxInt64+1
		{"18446744073709551615", false, true, false, true},
		{"18446744073709551616", false, false, false, false},
		{"-9223372036854775808", true, false, true, false},
		{"-9223372036854775809", false, false, false, false},
		{"1e100", false, false, false, false},
		{"inf", false, false, false, false},
		{"nan", false, false, false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := NewWithPrec(128)
			a.True(f.SetString(test.s, 10), test.s)
			a.Equal(test.i, f.FitsInt(), "FitsInt %s", test.s)
			a.Equal(test.u, f.FitsUint(), "FitsUint %s", test.s)
			a.Equal(test.i64, f.FitsInt64(), "FitsInt64 %s", test.s)
			a.Equal(test.u64, f.FitsUint64(), "FitsUint64 %s", test.s)
		})
	}
}

func TestRat(t *testing.T) {
	a := assert.New(t)
	r, ok := FromFloat64(0.5).Rat()
	a.True(ok)
	a.Equal("1/2", r.String())

	_, ok = New().Rat()
	a.False(ok)
	_, ok = FromFloat64(math.Inf(1)).Rat()
	a.False(ok)
}

func TestMarshalText(t *testing.T) {
	a := assert.New(t)
	f := FromFloat64(1.5)
	data, err := f.MarshalText()
	a.NoError(err)
	a.Equal("1.5", string(data))

	var g Float
	a.NoError(g.UnmarshalText(data))
	a.Equal(1.5, g.Float64(ToNearest))

	a.Error(g.UnmarshalText([]byte("abc")))
	a.Equal(DefaultPrec(), g.Prec())
}

func TestMarshalJSON(t *testing.T) {
	a := assert.New(t)
	f := FromFloat64(1.5)
	data, err := json.Marshal(f)
	a.NoError(err)
	a.Equal(`"1.5"`, string(data))

	var g Float
	a.NoError(json.Unmarshal(data, &g))
	a.Equal(1.5, g.Float64(ToNearest))

	a.NoError(json.Unmarshal([]byte("2.25"), &g)) // bare numbers are fine too
	a.Equal(2.25, g.Float64(ToNearest))
}
