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

func TestStackPushPopLIFO(t *testing.T) {
	s := newStack()
	defer returnStack(s)

	s.Push(WordFromUint64(1))
	s.Push(WordFromUint64(2))
	s.Push(WordFromUint64(3))

	top, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, WordFromUint64(3), top)

	require.Equal(t, 2, s.Len())
}

func TestStackPopEmptyUnderflows(t *testing.T) {
	s := newStack()
	defer returnStack(s)

	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackPeekDoesNotPop(t *testing.T) {
	s := newStack()
	defer returnStack(s)

	s.Push(WordFromUint64(10))
	s.Push(WordFromUint64(20))

	w, err := s.Peek(0)
	require.NoError(t, err)
	require.Equal(t, WordFromUint64(20), w)
	require.Equal(t, 2, s.Len())

	w, err = s.Peek(1)
	require.NoError(t, err)
	require.Equal(t, WordFromUint64(10), w)
}

func TestStackSwap(t *testing.T) {
	s := newStack()
	defer returnStack(s)

	s.Push(WordFromUint64(1))
	s.Push(WordFromUint64(2))

	require.NoError(t, s.Swap(0, 1))
	top, _ := s.Pop()
	require.Equal(t, WordFromUint64(1), top)
}

func TestStackDup(t *testing.T) {
	s := newStack()
	defer returnStack(s)

	s.Push(WordFromUint64(7))
	require.NoError(t, s.Dup(0))
	require.Equal(t, 2, s.Len())

	top, _ := s.Pop()
	second, _ := s.Pop()
	require.Equal(t, top, second)
}

func TestStackReturnResetsData(t *testing.T) {
	s := newStack()
	s.Push(WordFromUint64(1))
	returnStack(s)

	reused := newStack()
	defer returnStack(reused)
	require.Equal(t, 0, reused.Len())
}
