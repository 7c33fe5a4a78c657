// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"math/big"
	"sync"
)

const (
	// MinPrec is the smallest allowed precision, in bits.
	MinPrec = 2
	// MaxPrec is the largest allowed precision, in bits.
	MaxPrec = big.MaxPrec
)

// storage holds exactly one big.Float: its significand at a fixed
// precision plus the NaN tag big.Float cannot represent itself. A storage
// is owned by one or more Floats, refs counts the owners. It carries no
// back-references, so sharing can never form a cycle.
type storage struct {
	f    *big.Float
	nan  bool
	refs int32
}

var storagePool = sync.Pool{
	New: func() interface{} { return &storage{f: new(big.Float)} },
}

func checkPrec(prec uint) {
	if prec < MinPrec || prec > MaxPrec {
		panic(fmt.Sprintf("bigfloat: precision %d out of range [%d, %d]", prec, MinPrec, uint(MaxPrec)))
	}
}

// newStorage allocates a storage at the given precision with a NaN value
// and a single owner.
func newStorage(prec uint) *storage {
	checkPrec(prec)
	s := storagePool.Get().(*storage)
	s.f.SetPrec(0) // drop whatever a pooled object held
	s.f.SetPrec(prec)
	s.f.SetMode(big.ToNearestEven)
	s.nan = true
	s.refs = 1
	return s
}

// clone returns a structural copy: same precision, same bits, no rounding,
// a single owner.
func (s *storage) clone() *storage {
	ns := storagePool.Get().(*storage)
	ns.f.Copy(s.f)
	ns.nan = s.nan
	ns.refs = 1
	return ns
}

// retain adds an owner.
func (s *storage) retain() *storage {
	s.refs++
	return s
}

// release drops an owner and hands the storage back to the pool once the
// last one is gone. Releasing a storage with no owners is a programmer
// error.
func (s *storage) release() {
	if s.refs <= 0 {
		panic("bigfloat: release of a released value")
	}
	if s.refs--; s.refs == 0 {
		s.f.SetPrec(0)
		s.nan = false
		storagePool.Put(s)
	}
}

// setPrec reallocates the significand at the new precision. This is a
// precision change, not an assignment: the value is reinterpreted nearest
// to even.
func (s *storage) setPrec(prec uint) {
	checkPrec(prec)
	s.f.SetMode(big.ToNearestEven)
	s.f.SetPrec(prec)
}
