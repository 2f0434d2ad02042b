// Copyright 2014 The go-core Authors
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

// Package hexutil decodes ASCII hex text into bytecode bytes, the
// companion spec.md §6 describes as living outside the interpreter core:
// "malformed hex is a programming error at the boundary, not an
// interpreter error" — so Decode panics rather than returning an error,
// matching the teacher's common.FromHex/common.Hex2Bytes, which are
// themselves panic-on-malformed-input convenience wrappers used at
// config-loading boundaries, not on untrusted runtime input.
package hexutil

import "encoding/hex"

// Decode strips an optional leading "0x"/"0X" and decodes the remaining
// text as hex. It panics if the text (after stripping) isn't valid hex,
// since malformed bytecode source is a caller bug, not a runtime outcome.
func Decode(s string) []byte {
	s = trim0x(s)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("hexutil: malformed hex string " + s)
	}
	return b
}

// Encode renders b as "0x"-prefixed lowercase hex.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
