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
	"sync"
)

// Stack is a LIFO of Words with top at the high index, as spec.md §3/§4.2
// describes it. Stacks are obtained from a pool (newStack) and handed back
// with returnStack, by the interpreter and tests alike, to avoid per-call
// allocs.
type Stack struct {
	data []Word
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]Word, 0, 16)}
	},
}

// newStack borrows a Stack from the pool.
func newStack() *Stack {
	return stackPool.Get().(*Stack)
}

// returnStack resets and returns a Stack to the pool.
func returnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Len reports the number of elements currently on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// Push appends w at the top. No bound is imposed here; the interpreter's
// dispatch loop enforces params.StackLimit before the opcode executes.
func (s *Stack) Push(w Word) {
	s.data = append(s.data, w)
}

// Pop removes and returns the top element.
func (s *Stack) Pop() (Word, error) {
	n := len(s.data)
	if n == 0 {
		return Word{}, ErrStackUnderflow
	}
	w := s.data[n-1]
	s.data = s.data[:n-1]
	return w, nil
}

// Peek returns the i-th element from the top (0 = top) without popping it.
func (s *Stack) Peek(i int) (Word, error) {
	n := len(s.data)
	if i < 0 || i >= n {
		return Word{}, ErrStackUnderflow
	}
	return s.data[n-1-i], nil
}

// Swap exchanges the elements i and j positions from the top (0 = top).
func (s *Stack) Swap(i, j int) error {
	n := len(s.data)
	if i < 0 || j < 0 || i >= n || j >= n {
		return ErrStackUnderflow
	}
	s.data[n-1-i], s.data[n-1-j] = s.data[n-1-j], s.data[n-1-i]
	return nil
}

// Dup pushes a copy of the i-th element from the top (0 = top).
func (s *Stack) Dup(i int) error {
	w, err := s.Peek(i)
	if err != nil {
		return err
	}
	s.Push(w)
	return nil
}

// Data returns the stack contents, top-last, for tracing/debugging. The
// slice is a fresh copy so callers can't mutate interpreter state.
func (s *Stack) Data() []Word {
	out := make([]Word, len(s.data))
	copy(out, s.data)
	return out
}
