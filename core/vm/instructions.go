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

// Every function here implements one opcode's semantics per spec.md
// §4.5.3. They pop their own operands, push their own result, and report
// errors the same way the teacher's instructions.go does: a typed error
// value, never a panic. pc is only touched by the jump family and the
// PUSH family; everything else lets the dispatch loop increment it.

func opStop(pc *uint64, in *Interpreter) ([]byte, error) {
	return nil, nil
}

func opAdd(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	b, _ := in.stack.Pop()
	in.stack.Push(a.Add(b))
	return nil, nil
}

func opSub(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	b, _ := in.stack.Pop()
	in.stack.Push(a.Sub(b))
	return nil, nil
}

func opLt(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	b, _ := in.stack.Pop()
	in.stack.Push(a.Lt(b))
	return nil, nil
}

func opGt(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	b, _ := in.stack.Pop()
	in.stack.Push(a.Gt(b))
	return nil, nil
}

func opEq(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	b, _ := in.stack.Pop()
	in.stack.Push(a.Eq(b))
	return nil, nil
}

func opIszero(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	in.stack.Push(WordFromBool(a.IsZero()))
	return nil, nil
}

func opNot(pc *uint64, in *Interpreter) ([]byte, error) {
	a, _ := in.stack.Pop()
	in.stack.Push(a.Not())
	return nil, nil
}

// opSHL and opSHR follow the EVM-style operand order the teacher's
// instructions.go uses: the shift amount is on top, the value underneath.
func opSHL(pc *uint64, in *Interpreter) ([]byte, error) {
	shift, _ := in.stack.Pop()
	value, _ := in.stack.Pop()
	in.stack.Push(value.Shl(shift))
	return nil, nil
}

func opSHR(pc *uint64, in *Interpreter) ([]byte, error) {
	shift, _ := in.stack.Pop()
	value, _ := in.stack.Pop()
	in.stack.Push(value.Shr(shift))
	return nil, nil
}

func opCallValue(pc *uint64, in *Interpreter) ([]byte, error) {
	in.stack.Push(in.message.Value)
	return nil, nil
}

func opCallDataLoad(pc *uint64, in *Interpreter) ([]byte, error) {
	offset, _ := in.stack.Pop()
	in.stack.Push(in.message.DataLoad(offset))
	return nil, nil
}

func opCallDataSize(pc *uint64, in *Interpreter) ([]byte, error) {
	in.stack.Push(WordFromUint64(uint64(in.message.DataSize())))
	return nil, nil
}

// opCodeCopy implements CODECOPY(destOffset, codeOffset, length): copies
// length bytes from the running Code into Memory, zero-filling past the
// end of code, matching the teacher's opCodeCopy/opExtCodeCopy shape.
func opCodeCopy(pc *uint64, in *Interpreter) ([]byte, error) {
	destOffset, _ := in.stack.Pop()
	codeOffset, _ := in.stack.Pop()
	length, _ := in.stack.Pop()

	destIdx, err := destOffset.TryToIndex()
	if err != nil {
		return nil, ErrOutOfBounds
	}
	codeIdx, err := codeOffset.TryToIndex()
	if err != nil {
		return nil, ErrOutOfBounds
	}
	size, err := length.TryToIndex()
	if err != nil {
		return nil, ErrOutOfBounds
	}
	data := in.code.Slice(uint64(codeIdx), uint64(codeIdx+size))
	if err := in.memory.CopyIn(destOffset, data); err != nil {
		return nil, err
	}
	_ = destIdx
	return nil, nil
}

func opPop(pc *uint64, in *Interpreter) ([]byte, error) {
	_, _ = in.stack.Pop()
	return nil, nil
}

func opMload(pc *uint64, in *Interpreter) ([]byte, error) {
	off, _ := in.stack.Pop()
	w, err := in.memory.Load(off)
	if err != nil {
		return nil, err
	}
	in.stack.Push(w)
	return nil, nil
}

func opMstore(pc *uint64, in *Interpreter) ([]byte, error) {
	off, _ := in.stack.Pop()
	val, _ := in.stack.Pop()
	if err := in.memory.Store(off, val); err != nil {
		return nil, err
	}
	return nil, nil
}

func opMstore8(pc *uint64, in *Interpreter) ([]byte, error) {
	off, _ := in.stack.Pop()
	val, _ := in.stack.Pop()
	b := val.Bytes()
	if err := in.memory.StoreByte(off, b[len(b)-1]); err != nil {
		return nil, err
	}
	return nil, nil
}

func opSload(pc *uint64, in *Interpreter) ([]byte, error) {
	key, _ := in.stack.Pop()
	val, err := in.storage.Load(key)
	if err != nil {
		return nil, &ErrStorageError{Err: err}
	}
	in.stack.Push(val)
	return nil, nil
}

func opSstore(pc *uint64, in *Interpreter) ([]byte, error) {
	key, _ := in.stack.Pop()
	val, _ := in.stack.Pop()
	if err := in.storage.Store(key, val); err != nil {
		return nil, &ErrStorageError{Err: err}
	}
	return nil, nil
}

// opJump and opJumpi set pc themselves; the jump table marks their
// operation.jumps true so the dispatch loop does not also advance pc.
func opJump(pc *uint64, in *Interpreter) ([]byte, error) {
	dest, _ := in.stack.Pop()
	target, err := dest.TryToIndex()
	if err != nil {
		return nil, ErrTypeConversion
	}
	if !in.code.IsValidJumpDest(uint64(target)) {
		return nil, &ErrInvalidJump{Dest: uint64(target)}
	}
	*pc = uint64(target)
	return nil, nil
}

func opJumpi(pc *uint64, in *Interpreter) ([]byte, error) {
	dest, _ := in.stack.Pop()
	cond, _ := in.stack.Pop()
	if cond.IsZero() {
		*pc++
		return nil, nil
	}
	target, err := dest.TryToIndex()
	if err != nil {
		return nil, ErrTypeConversion
	}
	if !in.code.IsValidJumpDest(uint64(target)) {
		return nil, &ErrInvalidJump{Dest: uint64(target)}
	}
	*pc = uint64(target)
	return nil, nil
}

// opJumpdest is a no-op landing pad; validity was already settled by
// Code's pre-scan.
func opJumpdest(pc *uint64, in *Interpreter) ([]byte, error) {
	return nil, nil
}

// makePush returns the executionFunc for PUSHn: read n immediate bytes
// following the opcode, zero-extended on the left, push as a Word, and
// advance pc past the immediate only. PUSH's operation.jumps is false, so
// the dispatch loop's own pc++ accounts for the opcode byte itself.
func makePush(size int) executionFunc {
	return func(pc *uint64, in *Interpreter) ([]byte, error) {
		start := *pc + 1
		if start+uint64(size) > uint64(in.code.Len()) {
			// Short immediate: spec.md §4.5.3 treats a PUSH run off the
			// end of code as a truncated-immediate error, not a silent
			// zero-fill, even though Slice itself would zero-fill.
			return nil, ErrBadArg
		}
		raw := in.code.Slice(start, start+uint64(size))
		var buf [32]byte
		copy(buf[32-size:], raw)
		in.stack.Push(WordFromBeBytes(buf[:]))
		*pc += uint64(size)
		return nil, nil
	}
}

// makeDup returns the executionFunc for DUPn (n = i+1): duplicate the
// i-th item from the top.
func makeDup(i int) executionFunc {
	return func(pc *uint64, in *Interpreter) ([]byte, error) {
		return nil, in.stack.Dup(i)
	}
}

// makeSwap returns the executionFunc for SWAPn: exchange the top with the
// n-th item below it.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, in *Interpreter) ([]byte, error) {
		return nil, in.stack.Swap(0, n)
	}
}

// opReturn and opRevert both pop (offset, length) and read that memory
// range out as the halt payload; the jump table tells the dispatch loop
// which outcome (Returned vs Reverted) to wrap it in.
func opReturn(pc *uint64, in *Interpreter) ([]byte, error) {
	off, _ := in.stack.Pop()
	length, _ := in.stack.Pop()
	return in.memory.CopyOut(off, length)
}

func opRevert(pc *uint64, in *Interpreter) ([]byte, error) {
	off, _ := in.stack.Pop()
	length, _ := in.stack.Pop()
	return in.memory.CopyOut(off, length)
}
