// Copyright 2015 by the Authors
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

// Code wraps a read-only bytecode buffer together with a pre-scanned set
// of valid jump destinations, closing the gap spec.md §9 flags: "The
// source does not validate that jump destinations land on a JUMPDEST byte
// outside of PUSH immediates. This is a correctness gap."
type Code struct {
	bytes     []byte
	jumpDests map[uint64]bool
}

// NewCode pre-scans code once, marking every JUMPDEST byte that is not
// part of a PUSH immediate as a valid destination (the GLOSSARY's "Jump
// destination").
func NewCode(code []byte) *Code {
	c := &Code{bytes: code, jumpDests: make(map[uint64]bool)}
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		if op == JUMPDEST {
			c.jumpDests[pc] = true
			pc++
			continue
		}
		if op >= PUSH1 && op <= PUSH32 {
			pc += 1 + uint64(op-PUSH1+1)
			continue
		}
		pc++
	}
	return c
}

// Len is the number of bytes in the code buffer.
func (c *Code) Len() int { return len(c.bytes) }

// At returns the byte at pc, or STOP (0x00) past the end of code — callers
// that need to distinguish "past end" use Len directly (the fetch loop
// checks pc >= Len before calling At).
func (c *Code) At(pc uint64) byte {
	if pc >= uint64(len(c.bytes)) {
		return 0x00
	}
	return c.bytes[pc]
}

// Slice returns code[from:to], zero-filling past the end of the buffer —
// used by CODECOPY and by PUSH-n immediate decoding.
func (c *Code) Slice(from, to uint64) []byte {
	out := make([]byte, to-from)
	if from >= uint64(len(c.bytes)) {
		return out
	}
	end := to
	if end > uint64(len(c.bytes)) {
		end = uint64(len(c.bytes))
	}
	if end > from {
		copy(out, c.bytes[from:end])
	}
	return out
}

// IsValidJumpDest reports whether pc is a JUMPDEST byte outside any PUSH
// immediate.
func (c *Code) IsValidJumpDest(pc uint64) bool {
	return c.jumpDests[pc]
}
