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

import (
	"github.com/core-coin/go-svm/params"
)

// Memory is the zero-extended, monotonically growing byte buffer scoped to
// a single Interpreter.Execute call, per spec.md §3/§4.3.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len reports the current byte length (what MSIZE reports).
func (m *Memory) Len() int {
	return len(m.store)
}

// Resize grows the buffer to at least size bytes, zero-filling the new
// region. It never shrinks (growth is monotonic, spec.md §4.3).
func (m *Memory) Resize(size uint64) error {
	if size > params.MaxMemory {
		return ErrOutOfBounds
	}
	if int(size) > len(m.store) {
		grown := make([]byte, size)
		copy(grown, m.store)
		m.store = grown
	}
	return nil
}

// Load implements load(off): reads 32 bytes at off, growing memory first.
func (m *Memory) Load(off Word) (Word, error) {
	offset, err := off.TryToIndex()
	if err != nil {
		return Word{}, ErrBadAccess
	}
	if err := m.Resize(uint64(offset) + 32); err != nil {
		return Word{}, err
	}
	return WordFromBeBytes(m.store[offset : offset+32]), nil
}

// Store implements store(off, w): grows to off+32, writes w big-endian.
func (m *Memory) Store(off Word, w Word) error {
	offset, err := off.TryToIndex()
	if err != nil {
		return ErrBadAccess
	}
	if err := m.Resize(uint64(offset) + 32); err != nil {
		return err
	}
	var b [32]byte
	w.ToBeBytes(&b)
	copy(m.store[offset:offset+32], b[:])
	return nil
}

// StoreByte writes a single byte at off, growing memory first (MSTORE8).
func (m *Memory) StoreByte(off Word, b byte) error {
	offset, err := off.TryToIndex()
	if err != nil {
		return ErrBadAccess
	}
	if err := m.Resize(uint64(offset) + 1); err != nil {
		return err
	}
	m.store[offset] = b
	return nil
}

// CopyIn implements copy_in(dest_off, src): grows to dest_off+len(src),
// copies src in.
func (m *Memory) CopyIn(destOff Word, src []byte) error {
	if len(src) == 0 {
		return nil
	}
	offset, err := destOff.TryToIndex()
	if err != nil {
		return ErrBadAccess
	}
	if err := m.Resize(uint64(offset) + uint64(len(src))); err != nil {
		return err
	}
	copy(m.store[offset:offset+len(src)], src)
	return nil
}

// CopyOut implements copy_out(off, len): grows to off+len, returns a copy.
func (m *Memory) CopyOut(off, length Word) ([]byte, error) {
	offset, err := off.TryToIndex()
	if err != nil {
		return nil, ErrBadAccess
	}
	size, err := length.TryToIndex()
	if err != nil {
		return nil, ErrBadAccess
	}
	if size == 0 {
		return []byte{}, nil
	}
	if err := m.Resize(uint64(offset) + uint64(size)); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out, nil
}

// Data returns the full buffer for tracing/debugging, copied so callers
// can't mutate interpreter state.
func (m *Memory) Data() []byte {
	out := make([]byte, len(m.store))
	copy(out, m.store)
	return out
}
