// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"
	"strconv"
)

// RoundingMode determines how a result is rounded when it is not exactly
// representable at the target precision.
type RoundingMode uint8

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest RoundingMode = iota
	// ToZero truncates the magnitude.
	ToZero
	// ToPositiveInf rounds towards positive infinity.
	ToPositiveInf
	// ToNegativeInf rounds towards negative infinity.
	ToNegativeInf
	// AwayFromZero rounds the magnitude up.
	AwayFromZero
	// Faithful produces either of the two nearest representable values,
	// whichever the underlying big.Float yields. All other modes are
	// deterministic.
	Faithful
)

var roundingModeNames = [...]string{
	ToNearest:     "ToNearest",
	ToZero:        "ToZero",
	ToPositiveInf: "ToPositiveInf",
	ToNegativeInf: "ToNegativeInf",
	AwayFromZero:  "AwayFromZero",
	Faithful:      "Faithful",
}

// String returns the name of the mode.
func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// BigMode returns the big.Float rounding code used to carry out m.
// Faithful is free to pick either neighbor, so it goes through the
// nearest-even code.
func (m RoundingMode) BigMode() big.RoundingMode {
	switch m {
	case ToZero:
		return big.ToZero
	case ToPositiveInf:
		return big.ToPositiveInf
	case ToNegativeInf:
		return big.ToNegativeInf
	case AwayFromZero:
		return big.AwayFromZero
	default: // ToNearest, Faithful
		return big.ToNearestEven
	}
}

// ModeFromBig maps a big.Float rounding code to a RoundingMode. Codes with
// no counterpart, such as big.ToNearestAway, map to ToNearest.
func ModeFromBig(m big.RoundingMode) RoundingMode {
	switch m {
	case big.ToNearestEven:
		return ToNearest
	case big.ToZero:
		return ToZero
	case big.ToPositiveInf:
		return ToPositiveInf
	case big.ToNegativeInf:
		return ToNegativeInf
	case big.AwayFromZero:
		return AwayFromZero
	default:
		return ToNearest
	}
}
