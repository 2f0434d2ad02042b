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

package selector

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// These four cases are the worked examples the original implementation's
// abi.rs test carried: name_encoding checked each signature hashes to a
// known 4-byte selector.
func TestSelectorNameEncoding(t *testing.T) {
	cases := []struct {
		signature string
		want      string
	}{
		{"count()", "06661abd"},
		{"dec()", "b3bcfa82"},
		{"get()", "6d4ce63c"},
		{"inc()", "371303c0"},
	}
	for _, c := range cases {
		got := Selector(c.signature)
		require.Equal(t, c.want, hex.EncodeToString(got[:]), "signature %s", c.signature)
	}
}

func TestCallDataPadsToWord(t *testing.T) {
	data := CallData("get()")
	require.Len(t, data, 32)
	require.Equal(t, "6d4ce63c", hex.EncodeToString(data[:4]))
	for _, b := range data[4:] {
		require.Zero(t, b)
	}
}
