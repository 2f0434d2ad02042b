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

// SendMessageToContract runs the two-phase construct-then-call protocol
// of spec.md §4.5.4: constructorCode is executed first against a fresh
// Stack and Memory but the caller-supplied Storage; if it terminates via
// RETURN, the returned bytes are treated as runtime code and re-executed
// against the same Storage with another fresh Stack and Memory. The
// second phase's Outcome.Data is the value returned to the caller.
//
// A constructor that reverts surfaces *ContractError with Revert set; one
// that stops without returning surfaces *ContractError with Internal set
// to ErrUnexpectedStop (a constructor is required to hand back runtime
// code); any other failure in either phase surfaces *ContractError with
// Internal set. Runtime code that stops returns empty data and no error.
func SendMessageToContract(message Message, constructorCode []byte, storage Storage) ([]byte, error) {
	return SendMessageToContractWithConfig(message, constructorCode, storage, Config{})
}

// SendMessageToContractWithConfig is SendMessageToContract with an
// explicit Config (for tests that want a Tracer or a custom JumpTable
// attached to both phases).
func SendMessageToContractWithConfig(message Message, constructorCode []byte, storage Storage, cfg Config) ([]byte, error) {
	runtimeCode, err := runConstructor(message, constructorCode, storage, cfg)
	if err != nil {
		return nil, err
	}

	in := NewInterpreter(runtimeCode, message, storage, cfg)
	defer in.Release()

	out, err := in.Execute()
	if err != nil {
		return nil, &ContractError{Internal: err}
	}
	switch out.Kind {
	case KindReturned:
		return out.Data, nil
	case KindReverted:
		return nil, &ContractError{Revert: &Revert{Data: out.Data}}
	default: // KindStopped
		return out.Data, nil
	}
}

// runConstructor executes phase one and extracts the runtime code a
// successful RETURN hands back.
func runConstructor(message Message, constructorCode []byte, storage Storage, cfg Config) ([]byte, error) {
	in := NewInterpreter(constructorCode, message, storage, cfg)
	defer in.Release()

	out, err := in.Execute()
	if err != nil {
		return nil, &ContractError{Internal: err}
	}
	switch out.Kind {
	case KindReturned:
		return out.Data, nil
	case KindReverted:
		return nil, &ContractError{Revert: &Revert{Data: out.Data}}
	default: // KindStopped
		return nil, &ContractError{Internal: ErrUnexpectedStop}
	}
}
