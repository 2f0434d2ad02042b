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

// Package selector derives the 4-byte method selector a Message's call
// data conventionally leads with: the first four bytes of the Keccak-256
// hash of the method's canonical signature, e.g. "add(uint256,uint256)".
//
// This lives outside core/vm deliberately: spec.md's interpreter core
// names "true Keccak-256" a non-goal, leaving the hash to whatever the
// host platform supplies. selector is that host-side collaborator.
package selector

import "golang.org/x/crypto/sha3"

// Keccak256 hashes data the same way core-coin-go-core/crypto.Keccak256
// does: a single streaming sha3.NewLegacyKeccak256 write.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Selector is the 4-byte method selector for the given canonical method
// signature, e.g. Selector("add(uint256,uint256)").
func Selector(signature string) [4]byte {
	hash := Keccak256([]byte(signature))
	var out [4]byte
	copy(out[:], hash[:4])
	return out
}

// CallData builds a 32-byte call-data buffer whose first four bytes are
// the method selector and the rest is zero, matching
// original_source/src/abi.rs's Message::new_call: a convenience for
// callers that don't need to pack additional arguments.
func CallData(signature string) []byte {
	sel := Selector(signature)
	data := make([]byte, 32)
	copy(data[:4], sel[:])
	return data
}
