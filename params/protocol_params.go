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

// Package params holds the few constants the interpreter needs to bound an
// otherwise gas-less, unbounded machine (spec.md §5: "implementers should
// impose configurable caps"). Every energy/fork-activation constant the
// teacher carried here belonged to the gas-metering non-goal and was
// dropped; see DESIGN.md.
package params

const (
	// StackLimit is the maximum number of Words the interpreter's Stack may
	// hold at once, matching the reference EVM's cap (spec.md §4.2).
	StackLimit = 1024

	// MaxCodeSize is the reference EVM's code size cap. The interpreter
	// does not check code length against it.
	MaxCodeSize = 24576

	// MaxMemory bounds how far Memory.Resize will grow the byte buffer
	// before failing with ErrOutOfBounds, so a crafted MSTORE at a huge
	// offset can't exhaust the host's memory.
	MaxMemory = 32 * 1024 * 1024
)
