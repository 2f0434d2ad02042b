// Copyright 2014 by the Authors
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
	"errors"
	"fmt"
)

// Sentinel errors that carry no extra state, matching spec.md §7's taxonomy.
var (
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrBadArg            = errors.New("truncated opcode immediate")
	ErrBadAccess         = errors.New("memory offset out of host range")
	ErrOutOfBounds       = errors.New("size conversion overflowed")
	ErrTypeConversion    = errors.New("jump destination out of host range")
	ErrEndOfInstructions = errors.New("code cursor ran past end without a terminator")
	ErrUnexpectedStop    = errors.New("constructor phase stopped instead of returning")
)

// ErrBadOp reports a decoded opcode byte outside the supported set.
type ErrBadOp struct {
	Op byte
}

func (e *ErrBadOp) Error() string {
	return fmt.Sprintf("bad opcode 0x%02x", e.Op)
}

// ErrInvalidJump reports a JUMP/JUMPI destination that doesn't land on a
// valid JUMPDEST (the REDESIGN FLAG fix called for in spec.md §9).
type ErrInvalidJump struct {
	Dest uint64
}

func (e *ErrInvalidJump) Error() string {
	return fmt.Sprintf("invalid jump destination %d", e.Dest)
}

// ErrStorageError wraps a failure from the storage backend (§7's
// StorageError(inner)).
type ErrStorageError struct {
	Err error
}

func (e *ErrStorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *ErrStorageError) Unwrap() error { return e.Err }

// Revert is not propagated as an internal interpreter failure: it is the
// ordinary terminal outcome spec.md §7 describes as "not an internal
// error". It implements error only so ContractError can carry it uniformly.
type Revert struct {
	Data []byte
}

func (r *Revert) Error() string {
	return fmt.Sprintf("execution reverted (%d bytes)", len(r.Data))
}

// ContractError is what the two-phase driver (§4.5.4, §6) surfaces to
// callers of SendMessageToContract.
type ContractError struct {
	// Revert is set when the contract terminated via REVERT; Data is the
	// payload it returned.
	Revert *Revert
	// Internal is set for every other failure, including UnexpectedStop.
	Internal error
}

func (e *ContractError) Error() string {
	if e.Revert != nil {
		return e.Revert.Error()
	}
	return fmt.Sprintf("internal error: %v", e.Internal)
}

func (e *ContractError) Unwrap() error {
	if e.Revert != nil {
		return e.Revert
	}
	return e.Internal
}
