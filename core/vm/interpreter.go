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

// Tracer receives one callback per executed step, mirroring the hook
// the teacher's logger_json.go/StructLogger wires into CVMInterpreter.Run.
// Execute calls it after each opcode runs, passing a copy of Memory taken
// with Memory.Data() and a nil stack; the stack contents are not passed.
type Tracer interface {
	CaptureState(pc uint64, op OpCode, stack, memory []byte)
}

// Config holds the handful of knobs this core exposes, trimmed from the
// teacher's vm.Config (which also carries energy-table selection and
// debug dumping this core has no use for).
type Config struct {
	// JumpTable lets callers substitute an alternate opcode set; the zero
	// value means InstructionSet.
	JumpTable *JumpTable
	// Tracer, if set, is called once per executed instruction.
	Tracer Tracer
}

// OutcomeKind is how a successful Execute ended: STOP, RETURN or REVERT.
// Every other termination is reported as an error instead.
type OutcomeKind int

const (
	KindStopped OutcomeKind = iota
	KindReturned
	KindReverted
)

// Outcome is what a completed Execute call produced.
type Outcome struct {
	Kind OutcomeKind
	Data []byte
}

// Interpreter runs one piece of Code against one Message, Stack, Memory
// and Storage, per spec.md §4.5.1. It is single-use: callers build a
// fresh Interpreter (via NewInterpreter) for every phase of every call.
type Interpreter struct {
	code    *Code
	message Message
	stack   *Stack
	memory  *Memory
	storage Storage
	cfg     Config
	jt      *JumpTable
}

// NewInterpreter wires together a single Execute call's inputs. The stack
// is borrowed from the pool and memory is freshly allocated; both are owned
// by the Interpreter for its lifetime. Callers must call Release when done
// (SendMessageToContract does this for them).
func NewInterpreter(code []byte, message Message, storage Storage, cfg Config) *Interpreter {
	jt := &InstructionSet
	if cfg.JumpTable != nil {
		jt = cfg.JumpTable
	}
	return &Interpreter{
		code:    NewCode(code),
		message: message,
		stack:   newStack(),
		memory:  NewMemory(),
		storage: storage,
		cfg:     cfg,
		jt:      jt,
	}
}

// Release returns the Interpreter's Stack to the shared pool. Safe to
// call once, after Execute has returned.
func (in *Interpreter) Release() {
	returnStack(in.stack)
}

// Execute runs the fetch-decode-dispatch loop of spec.md §4.5.1 to
// completion, returning the terminal Outcome or the error that ended
// execution early (bad opcode, stack under/overflow, invalid jump, a
// storage failure, or running off the end of code without a halting op).
func (in *Interpreter) Execute() (Outcome, error) {
	var pc uint64

	for {
		if pc >= uint64(in.code.Len()) {
			return Outcome{}, ErrEndOfInstructions
		}

		op := OpCode(in.code.At(pc))
		opInfo := in.jt[op]
		if opInfo.execute == nil {
			return Outcome{}, &ErrBadOp{Op: byte(op)}
		}

		if sLen := in.stack.Len(); sLen < opInfo.minStack {
			return Outcome{}, ErrStackUnderflow
		} else if sLen > opInfo.maxStack {
			return Outcome{}, ErrOutOfBounds
		}

		ret, err := opInfo.execute(&pc, in)

		if in.cfg.Tracer != nil {
			in.cfg.Tracer.CaptureState(pc, op, nil, in.memory.Data())
		}

		if err != nil {
			return Outcome{}, err
		}

		switch opInfo.halt {
		case haltStop:
			return Outcome{Kind: KindStopped}, nil
		case haltReturn:
			return Outcome{Kind: KindReturned, Data: ret}, nil
		case haltRevert:
			return Outcome{Kind: KindReverted, Data: ret}, nil
		}

		if !opInfo.jumps {
			pc++
		}
	}
}
