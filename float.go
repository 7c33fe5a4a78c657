// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package bigfloat implements an arbitrary-precision binary floating-point
// number with value semantics. A Float is a handle to refcounted big.Float
// storage shared copy-on-write: Copy is cheap, and a shared value is cloned the
// moment one of its owners mutates it, so copies never observe each other's
// changes.
//
// Every value carries its own precision, fixed when it is constructed.
// Constructors without an explicit precision capture the process default at
// call time; changing the default later does not touch existing values.
// Rounding is chosen per operation, and operations that omit a mode use
// ToNearest. NaN, infinities and signed zero are fully supported.
//
// Set operations report a ternary: 0 if the stored result is exact at the
// target precision, +1 if it was rounded up relative to the true value,
// -1 if rounded down.
//
// A Float is not safe for concurrent use without external synchronization,
// and neither are the process-wide defaults.
package bigfloat

import (
	"math"
	"math/big"
)

// Float is an arbitrary-precision floating-point number.
// The zero value is not usable: use New, NewWithPrec, or a From constructor.
type Float struct {
	s *storage
}

// New returns a NaN Float at the current default precision.
func New() *Float {
	return &Float{s: newStorage(DefaultPrec())}
}

// NewWithPrec returns a NaN Float at the given precision, in bits.
// Panics if prec is outside [MinPrec, MaxPrec].
func NewWithPrec(prec uint) *Float {
	return &Float{s: newStorage(prec)}
}

// FromFloat64 returns a Float at the default precision set to x.
func FromFloat64(x float64) *Float {
	f := New()
	f.SetFloat64(x, ToNearest)
	return f
}

// FromInt returns a Float at the default precision set to x.
func FromInt(x int) *Float {
	f := New()
	f.SetInt(x, ToNearest)
	return f
}

// FromUint returns a Float at the default precision set to x.
func FromUint(x uint) *Float {
	f := New()
	f.SetUint(x, ToNearest)
	return f
}

// FromInt64 returns a Float at the default precision set to x.
func FromInt64(x int64) *Float {
	f := New()
	f.SetInt64(x, ToNearest)
	return f
}

// FromUint64 returns a Float at the default precision set to x.
func FromUint64(x uint64) *Float {
	f := New()
	f.SetUint64(x, ToNearest)
	return f
}

// FromBigInt returns a Float at the default precision set to x.
func FromBigInt(x *big.Int) *Float {
	f := New()
	f.SetBigInt(x, ToNearest)
	return f
}

// FromRat returns a Float at the default precision set to x.
func FromRat(x *big.Rat) *Float {
	f := New()
	f.SetRat(x, ToNearest)
	return f
}

// Copy returns a Float sharing x's storage. The storage stays shared until
// one of its owners mutates it.
func (x *Float) Copy() *Float {
	return &Float{s: x.s.retain()}
}

// Release hands x's share of the storage back to the internal pool. Any use
// of a released Float panics. Release is optional: an unreleased Float is
// reclaimed by the garbage collector, it just bypasses the pool.
func (x *Float) Release() {
	x.s.release()
	x.s = nil
}

// Unique reports whether x is the only owner of its storage.
func (x *Float) Unique() bool {
	return x.s.refs == 1
}

// Prec returns x's precision in bits.
func (x *Float) Prec() uint {
	return x.s.f.Prec()
}

// SetPrec changes x's precision. The value is reinterpreted at the new
// precision nearest to even.
// Panics if prec is outside [MinPrec, MaxPrec].
func (x *Float) SetPrec(prec uint) *Float {
	checkPrec(prec)
	x.mutable().setPrec(prec)
	return x
}

// mutable returns x's storage, cloning it first if it is shared. After the
// call x owns its storage exclusively.
func (x *Float) mutable() *storage {
	if x.s.refs > 1 {
		ns := x.s.clone()
		x.s.refs--
		x.s = ns
	}
	return x.s
}

func (x *Float) setNaN() int {
	s := x.mutable()
	s.nan = true
	raise(FlagNaN)
	return 0
}

// SetNaN sets x to NaN and records FlagNaN.
func (x *Float) SetNaN() int {
	return x.setNaN()
}

// Set assigns y to x, rounded to x's precision with the given mode, and
// returns the ternary. Assigning a value to itself, or to a copy that still
// shares its storage, is an exact no-op.
func (x *Float) Set(y *Float, mode RoundingMode) int {
	if x.s == y.s {
		return 0
	}
	if y.IsNaN() {
		return x.setNaN()
	}
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.Set(y.s.f)
	return int(s.f.Acc())
}

// SetFloat64 assigns y to x and returns the ternary. NaN, infinities and
// the sign of zero carry over.
func (x *Float) SetFloat64(y float64, mode RoundingMode) int {
	if math.IsNaN(y) {
		return x.setNaN()
	}
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.SetFloat64(y)
	return int(s.f.Acc())
}

// SetInt assigns y to x and returns the ternary. The result is exact, and
// the ternary 0, whenever x's precision covers y's bit length.
func (x *Float) SetInt(y int, mode RoundingMode) int {
	return x.SetInt64(int64(y), mode)
}

// SetUint assigns y to x and returns the ternary.
func (x *Float) SetUint(y uint, mode RoundingMode) int {
	return x.SetUint64(uint64(y), mode)
}

// SetInt64 assigns y to x and returns the ternary.
func (x *Float) SetInt64(y int64, mode RoundingMode) int {
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.SetInt64(y)
	return int(s.f.Acc())
}

// SetUint64 assigns y to x and returns the ternary.
func (x *Float) SetUint64(y uint64, mode RoundingMode) int {
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.SetUint64(y)
	return int(s.f.Acc())
}

// SetBigInt assigns y to x and returns the ternary.
func (x *Float) SetBigInt(y *big.Int, mode RoundingMode) int {
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.SetInt(y)
	return int(s.f.Acc())
}

// SetRat assigns y, the quotient of its numerator and denominator computed
// at x's precision, and returns the ternary.
func (x *Float) SetRat(y *big.Rat, mode RoundingMode) int {
	s := x.mutable()
	s.nan = false
	s.f.SetMode(mode.BigMode())
	s.f.SetRat(y)
	return int(s.f.Acc())
}

// SetInf sets x to an infinity of the given sign. The result is exact.
func (x *Float) SetInf(signbit bool) int {
	s := x.mutable()
	s.nan = false
	s.f.SetInf(signbit)
	return 0
}
