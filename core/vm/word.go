// Copyright 2014 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"github.com/core-coin/uint256"
)

// Word is the machine's native 256-bit datum. It wraps uint256.Int and
// restricts its surface to the wrapping/logical semantics this interpreter
// needs: no signed ops, no EXP/MULMOD, no EVM energy-accounting helpers.
type Word struct {
	u uint256.Int
}

// ZeroWord and OneWord are the two constants the interpreter pushes most.
func ZeroWord() Word { return Word{} }

func OneWord() Word {
	var w Word
	w.u.SetOne()
	return w
}

// WordFromUint64 builds a Word from a host uint64.
func WordFromUint64(v uint64) Word {
	var w Word
	w.u.SetUint64(v)
	return w
}

// WordFromBool implements from_bool: 1 for true, 0 for false.
func WordFromBool(b bool) Word {
	if b {
		return OneWord()
	}
	return ZeroWord()
}

// WordFromBeBytes implements from_be_bytes: right-aligned, zero-extended
// on the left when shorter than 32 bytes. Longer inputs are truncated to
// their low 32 bytes, matching uint256.Int.SetBytes.
func WordFromBeBytes(b []byte) Word {
	var w Word
	w.u.SetBytes(b)
	return w
}

// ToBeBytes implements to_be_bytes: a fixed 32-byte big-endian encoding.
func (w Word) ToBeBytes(out *[32]byte) {
	b := w.u.Bytes32()
	*out = b
}

// Bytes returns the big-endian encoding as a freshly allocated 32-byte slice.
func (w Word) Bytes() []byte {
	var b [32]byte
	w.ToBeBytes(&b)
	return b[:]
}

// Add computes (a + b) mod 2**256.
func (a Word) Add(b Word) Word {
	var out Word
	out.u.Add(&a.u, &b.u)
	return out
}

// Sub computes (a - b) mod 2**256.
func (a Word) Sub(b Word) Word {
	var out Word
	out.u.Sub(&a.u, &b.u)
	return out
}

// Lt is unsigned less-than, returning a Word boolean.
func (a Word) Lt(b Word) Word {
	return WordFromBool(a.u.Lt(&b.u))
}

// Gt is unsigned greater-than, returning a Word boolean.
func (a Word) Gt(b Word) Word {
	return WordFromBool(a.u.Gt(&b.u))
}

// Eq returns a Word boolean.
func (a Word) Eq(b Word) Word {
	return WordFromBool(a.u.Eq(&b.u))
}

// IsZero reports whether the value is zero.
func (a Word) IsZero() bool {
	return a.u.IsZero()
}

// Not computes the bitwise complement: 2**256 - 1 - a.
func (a Word) Not() Word {
	var out Word
	out.u.Not(&a.u)
	return out
}

// Shl is a logical left shift; shifts of 256 or more yield zero.
func (a Word) Shl(shift Word) Word {
	if !shift.fitsShiftRange() {
		return ZeroWord()
	}
	var out Word
	out.u.Lsh(&a.u, uint(shift.u.Uint64()))
	return out
}

// Shr is a logical right shift; shifts of 256 or more yield zero.
func (a Word) Shr(shift Word) Word {
	if !shift.fitsShiftRange() {
		return ZeroWord()
	}
	var out Word
	out.u.Rsh(&a.u, uint(shift.u.Uint64()))
	return out
}

// fitsShiftRange reports whether the shift amount is small enough that the
// result isn't trivially zero (i.e. shift < 256).
func (a Word) fitsShiftRange() bool {
	return a.u.LtUint64(256)
}

// Cmp gives the usual total order over the unsigned 256-bit range:
// -1, 0 or 1 as a < b, a == b, a > b.
func (a Word) Cmp(b Word) int {
	return a.u.Cmp(&b.u)
}

// Uint64 truncates to the low 64 bits, discarding the rest. Used for sizes
// and offsets that are validated with TryToIndex first.
func (a Word) Uint64() uint64 {
	return a.u.Uint64()
}

// TryToIndex implements try_to_index: fails with ErrOutOfBounds if the
// value can't be represented as a host int (here: a non-negative int that
// also fits a Go slice index, capped well below uint64 to leave headroom
// for offset+length additions without wrapping).
func (a Word) TryToIndex() (int, error) {
	if !a.u.IsUint64() {
		return 0, ErrOutOfBounds
	}
	v := a.u.Uint64()
	if v > maxAddressableIndex {
		return 0, ErrOutOfBounds
	}
	return int(v), nil
}

// maxAddressableIndex bounds memory/call-data offsets well under both the
// host int range and realistic memory sizes, so offset+length arithmetic
// performed after conversion cannot silently overflow.
const maxAddressableIndex = 1 << 32

// String renders a Word for logs and error messages.
func (w Word) String() string {
	return w.u.Hex()
}
