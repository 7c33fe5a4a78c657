// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"strings"
	"sync"
)

// Flags is a bitmask of numeric conditions recorded by operations on Float
// values, mirroring the exception flags of IEEE 754.
type Flags uint

const (
	// FlagOverflow is recorded when a result exceeds the target range.
	FlagOverflow Flags = 1 << iota
	// FlagUnderflow is recorded when a nonzero result collapses to zero.
	FlagUnderflow
	// FlagRange is recorded when an operation has no meaningful result,
	// such as comparing against NaN.
	FlagRange
	// FlagNaN is recorded when a NaN is produced or assigned.
	FlagNaN
	// FlagDivByZero is recorded when a division of a nonzero value by
	// zero is reported.
	FlagDivByZero
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagOverflow, "overflow"},
	{FlagUnderflow, "underflow"},
	{FlagRange, "range"},
	{FlagNaN, "nan"},
	{FlagDivByZero, "divbyzero"},
}

// IsOverflow reports whether the overflow bit is set.
func (f Flags) IsOverflow() bool { return f&FlagOverflow != 0 }

// IsUnderflow reports whether the underflow bit is set.
func (f Flags) IsUnderflow() bool { return f&FlagUnderflow != 0 }

// IsRange reports whether the range bit is set.
func (f Flags) IsRange() bool { return f&FlagRange != 0 }

// IsNaN reports whether the nan bit is set.
func (f Flags) IsNaN() bool { return f&FlagNaN != 0 }

// IsDivByZero reports whether the divbyzero bit is set.
func (f Flags) IsDivByZero() bool { return f&FlagDivByZero != 0 }

// String returns the set bits as "overflow|nan", or "none".
func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

var (
	flagsMu sync.Mutex
	flags   Flags
)

// ExceptionFlags returns the conditions recorded since the last call to
// ClearExceptionFlags. Conditions are reported out of band: no operation
// fails on them, callers that care must poll.
func ExceptionFlags() Flags {
	flagsMu.Lock()
	defer flagsMu.Unlock()
	return flags
}

// ClearExceptionFlags resets the recorded conditions.
func ClearExceptionFlags() {
	flagsMu.Lock()
	defer flagsMu.Unlock()
	flags = 0
}

func raise(f Flags) {
	flagsMu.Lock()
	defer flagsMu.Unlock()
	flags |= f
}
