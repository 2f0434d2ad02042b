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

import "github.com/core-coin/go-svm/params"

// executionFunc runs one opcode's semantics. It may mutate pc directly
// (JUMP/JUMPI/PUSH-n do); the dispatch loop only auto-increments pc when
// operation.jumps is false. A non-nil []byte return only matters when
// operation.halt is haltReturn or haltRevert (RETURN/REVERT).
type executionFunc func(pc *uint64, in *Interpreter) ([]byte, error)

// haltKind distinguishes the three ways an opcode can end execution, so
// the dispatch loop can report Outcome.Kind without the instruction
// itself needing to know about Outcome.
type haltKind int

const (
	notHalt haltKind = iota
	haltStop
	haltReturn
	haltRevert
)

// operation is one opcode's descriptor: the abstract requirement spec.md
// §9 describes as "map byte -> (name, immediate width, semantic)",
// realized here as go-core/core/vm's dense [256]operation lookup table
// rather than a sum type or closures-in-an-array — all three are
// equivalent per spec.md §9, and the table is what the teacher uses.
type operation struct {
	execute  executionFunc
	minStack int
	maxStack int

	halt  haltKind // STOP/RETURN/REVERT: which way this op ends execution
	jumps bool     // JUMP/JUMPI: op sets pc itself, don't auto-increment
}

// JumpTable contains one operation per possible opcode byte. Entries left
// at the zero value (detected via execute == nil) decode to BadOp.
type JumpTable [256]operation

func minMax(pop, push int) (int, int) {
	return pop, params.StackLimit - push + pop
}

// InstructionSet is the single opcode set this core supports (spec.md
// §4.5.2's minimum required table). Unlike the teacher's fork-gated
// newFrontierInstructionSet/newIstanbulInstructionSet/etc. ladder — which
// exists to let CIPs add/replace opcodes over chain history — this core
// has no forks, so there is exactly one table.
var InstructionSet = newInstructionSet()

func newInstructionSet() JumpTable {
	var jt JumpTable

	set := func(op OpCode, pop, push int, exec executionFunc) {
		min, max := minMax(pop, push)
		jt[op] = operation{execute: exec, minStack: min, maxStack: max}
	}

	set(STOP, 0, 0, opStop)
	jt[STOP].halt = haltStop

	set(ADD, 2, 1, opAdd)
	set(SUB, 2, 1, opSub)

	set(LT, 2, 1, opLt)
	set(GT, 2, 1, opGt)
	set(EQ, 2, 1, opEq)
	set(ISZERO, 1, 1, opIszero)
	set(NOT, 1, 1, opNot)
	set(SHL, 2, 1, opSHL)
	set(SHR, 2, 1, opSHR)

	set(CALLVALUE, 0, 1, opCallValue)
	set(CALLDATALOAD, 1, 1, opCallDataLoad)
	set(CALLDATASIZE, 0, 1, opCallDataSize)
	set(CODECOPY, 3, 0, opCodeCopy)

	set(POP, 1, 0, opPop)
	set(MLOAD, 1, 1, opMload)
	set(MSTORE, 2, 0, opMstore)
	set(MSTORE8, 2, 0, opMstore8)
	set(SLOAD, 1, 1, opSload)
	set(SSTORE, 2, 0, opSstore)

	set(JUMP, 1, 0, opJump)
	jt[JUMP].jumps = true
	set(JUMPI, 2, 0, opJumpi)
	jt[JUMPI].jumps = true
	set(JUMPDEST, 0, 0, opJumpdest)

	for i := 0; i < 32; i++ {
		op := PUSH1 + OpCode(i)
		min, max := minMax(0, 1)
		jt[op] = operation{execute: makePush(i + 1), minStack: min, maxStack: max}
	}
	for i := 0; i < 16; i++ {
		op := DUP1 + OpCode(i)
		min, max := minMax(i+1, i+2)
		jt[op] = operation{execute: makeDup(i), minStack: min, maxStack: max}
	}
	for i := 0; i < 16; i++ {
		op := SWAP1 + OpCode(i)
		min, max := minMax(i+2, i+2)
		jt[op] = operation{execute: makeSwap(i + 1), minStack: min, maxStack: max}
	}

	set(RETURN, 2, 0, opReturn)
	jt[RETURN].halt = haltReturn
	set(REVERT, 2, 0, opRevert)
	jt[REVERT].halt = haltRevert

	return jt
}
