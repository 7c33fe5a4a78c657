// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import "sync"

var (
	defaultsMu  sync.Mutex
	defaultPrec uint = 53
	defaultMode      = ToNearest
)

// DefaultPrec returns the precision, in bits, used by constructors that do
// not take an explicit one.
func DefaultPrec() uint {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultPrec
}

// SetDefaultPrec changes the default precision. The new value applies only
// to Floats constructed afterwards; existing values keep the precision they
// were built with. Panics if prec is outside [MinPrec, MaxPrec].
func SetDefaultPrec(prec uint) {
	checkPrec(prec)
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultPrec = prec
}

// DefaultRoundingMode returns the process-wide rounding mode. It is consulted
// only by call sites that read it explicitly; operations that omit a mode
// always use ToNearest.
func DefaultRoundingMode() RoundingMode {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultMode
}

// SetDefaultRoundingMode changes the process-wide rounding mode.
func SetDefaultRoundingMode(mode RoundingMode) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultMode = mode
}
