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

package hexutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeStripsPrefix(t *testing.T) {
	require.Equal(t, []byte{0x60, 0x01}, Decode("0x6001"))
	require.Equal(t, []byte{0x60, 0x01}, Decode("6001"))
	require.Equal(t, []byte{0x60, 0x01}, Decode("0X6001"))
}

func TestDecodeOddLengthPads(t *testing.T) {
	require.Equal(t, []byte{0x0f}, Decode("0xf"))
}

func TestDecodeMalformedPanics(t *testing.T) {
	require.Panics(t, func() { Decode("0xzz") })
}

func TestEncodeAddsPrefix(t *testing.T) {
	require.Equal(t, "0x6001", Encode([]byte{0x60, 0x01}))
}
