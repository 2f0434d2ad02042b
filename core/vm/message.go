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

// Message is the immutable inbound call spec.md §3 describes: value,
// caller, and a raw data buffer conventionally prefixed with a 4-byte
// method selector (see the selector package).
type Message struct {
	Value  Word
	Caller Word
	Data   []byte
}

// DataLoad reads 32 bytes from Data starting at offset, zero-filling past
// the end (spec.md §4.5.3's CALLDATALOAD redesign, which departs from
// original_source/src/vm.rs's error-on-short-read).
func (m Message) DataLoad(offset Word) Word {
	idx, overflow := offset.u.Uint64WithOverflow()
	if overflow || idx > uint64(len(m.Data)) {
		return ZeroWord()
	}
	end := idx + 32
	if end > uint64(len(m.Data)) {
		end = uint64(len(m.Data))
	}
	var buf [32]byte
	copy(buf[:end-idx], m.Data[idx:end])
	return WordFromBeBytes(buf[:])
}

// DataSize is the length of the call-data buffer.
func (m Message) DataSize() int {
	return len(m.Data)
}
