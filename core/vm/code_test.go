// Copyright 2015 The go-core Authors
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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeJumpDestOutsidePushImmediateIsValid(t *testing.T) {
	// PUSH1 0x5b; JUMPDEST
	code := []byte{byte(PUSH1), 0x5b, byte(JUMPDEST)}
	c := NewCode(code)
	require.True(t, c.IsValidJumpDest(2))
}

func TestCodeJumpDestInsidePushImmediateIsInvalid(t *testing.T) {
	// PUSH1 0x5b: the 0x5b byte is JUMPDEST's opcode value but it's data here.
	code := []byte{byte(PUSH1), 0x5b}
	c := NewCode(code)
	require.False(t, c.IsValidJumpDest(1))
}

func TestCodeSliceZeroFillsPastEnd(t *testing.T) {
	code := []byte{0x01, 0x02}
	c := NewCode(code)
	got := c.Slice(0, 4)
	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, got)
}

func TestCodeAtPastEndIsStop(t *testing.T) {
	c := NewCode([]byte{0x01})
	require.Equal(t, byte(0x00), c.At(5))
}
