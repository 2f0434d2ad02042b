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

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordAddWraps(t *testing.T) {
	maxWord := ZeroWord().Sub(OneWord()) // 2**256 - 1
	got := maxWord.Add(OneWord())
	require.True(t, got.IsZero(), "2**256-1 + 1 should wrap to zero, got %s", got)
}

func TestWordSubWraps(t *testing.T) {
	got := ZeroWord().Sub(OneWord())
	want := ZeroWord().Not()
	require.Equal(t, want, got)
}

func TestWordComparisons(t *testing.T) {
	one := OneWord()
	two := WordFromUint64(2)

	require.False(t, one.Lt(two).IsZero())
	require.False(t, two.Gt(one).IsZero())
	require.False(t, one.Eq(one).IsZero())
	require.True(t, one.Eq(two).IsZero())
}

func TestWordNotInvolution(t *testing.T) {
	w := WordFromUint64(0xdeadbeef)
	require.Equal(t, w, w.Not().Not())
}

func TestWordShiftCompositionIsZeroPastWidth(t *testing.T) {
	w := WordFromUint64(1)
	shifted := w.Shl(WordFromUint64(255)).Shl(OneWord())
	require.True(t, shifted.IsZero(), "shifting past bit 255 must yield zero, got %s", shifted)
}

func TestWordShiftByZeroIsIdentity(t *testing.T) {
	w := WordFromUint64(12345)
	require.Equal(t, w, w.Shl(ZeroWord()))
	require.Equal(t, w, w.Shr(ZeroWord()))
}

func TestWordShiftByAtLeast256IsZero(t *testing.T) {
	w := WordFromUint64(1)
	require.True(t, w.Shl(WordFromUint64(256)).IsZero())
	require.True(t, w.Shr(WordFromUint64(256)).IsZero())
}

func TestWordBytesRoundTrip(t *testing.T) {
	var in [32]byte
	for i := range in {
		in[i] = byte(i)
	}
	w := WordFromBeBytes(in[:])
	var out [32]byte
	w.ToBeBytes(&out)
	require.Equal(t, in, out)
}

func TestWordFromBeBytesZeroExtends(t *testing.T) {
	w := WordFromBeBytes([]byte{0x01})
	require.Equal(t, WordFromUint64(1), w)
}

func TestWordFromBool(t *testing.T) {
	require.False(t, WordFromBool(true).Eq(OneWord()).IsZero())
	require.True(t, WordFromBool(false).IsZero())
}

func TestWordTryToIndex(t *testing.T) {
	idx, err := WordFromUint64(42).TryToIndex()
	require.NoError(t, err)
	require.Equal(t, 42, idx)

	huge := ZeroWord().Not() // 2**256 - 1
	_, err = huge.TryToIndex()
	require.ErrorIs(t, err, ErrOutOfBounds)
}
