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
	"encoding/hex"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func runCode(t *testing.T, code []byte) (Outcome, error) {
	t.Helper()
	in := NewInterpreter(code, Message{}, NewMapStorage(), Config{})
	defer in.Release()
	out, err := in.Execute()
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(out, err))
		}
	})
	return out, err
}

func TestEndToEndPushAddReturn(t *testing.T) {
	// PUSH1 1; PUSH1 2; ADD; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN
	out, err := runCode(t, mustHex("600160020160005260206000f3"))
	require.NoError(t, err)
	require.Equal(t, KindReturned, out.Kind)
	require.Len(t, out.Data, 32)
	require.Equal(t, byte(0x03), out.Data[31])
	for _, b := range out.Data[:31] {
		require.Zero(t, b)
	}
}

func TestEndToEndRevertEmpty(t *testing.T) {
	out, err := runCode(t, mustHex("60006000fd"))
	require.NoError(t, err)
	require.Equal(t, KindReverted, out.Kind)
	require.Empty(t, out.Data)
}

func TestEndToEndStop(t *testing.T) {
	out, err := runCode(t, mustHex("00"))
	require.NoError(t, err)
	require.Equal(t, KindStopped, out.Kind)
}

func TestEndToEndBadOpcode(t *testing.T) {
	_, err := runCode(t, mustHex("0c"))
	var badOp *ErrBadOp
	require.ErrorAs(t, err, &badOp)
	require.Equal(t, byte(0x0c), badOp.Op)
}

func TestEndToEndShortImmediate(t *testing.T) {
	_, err := runCode(t, mustHex("61ff"))
	require.ErrorIs(t, err, ErrBadArg)
}

func TestEndToEndJumpIntoJumpdest(t *testing.T) {
	// PUSH1 4; JUMP; STOP; JUMPDEST; PUSH1 0x42; PUSH1 0; MSTORE;
	// PUSH1 32; PUSH1 0; RETURN
	out, err := runCode(t, mustHex("600456005b604260005260206000f3"))
	require.NoError(t, err)
	require.Equal(t, KindReturned, out.Kind)
	require.Len(t, out.Data, 32)
	require.Equal(t, byte(0x42), out.Data[31])
}

func TestEndToEndTwoPhaseDriver(t *testing.T) {
	runtimeCode := "600160020160005260206000f3"
	// constructor: PUSH32 the runtime code left-justified in a word (zero
	// padded on the right), MSTORE it at offset 0, then RETURN exactly
	// len(runtimeCode) bytes so the driver treats them as runtime code.
	constructor := mustHex("7f" + runtimeCode + "00000000000000000000000000000000000000" + "600052600d6000f3")

	storage := NewMapStorage()
	out, err := SendMessageToContract(Message{}, constructor, storage)
	require.NoError(t, err)
	require.Len(t, out, 32)
	require.Equal(t, byte(0x03), out[31])
}

func TestJumpToNonJumpdestIsInvalid(t *testing.T) {
	// PUSH1 0x02; JUMP: the target (pc=2) lands on the JUMP opcode
	// itself, which is not a JUMPDEST.
	_, err := runCode(t, mustHex("600256"))
	var invalidJump *ErrInvalidJump
	require.ErrorAs(t, err, &invalidJump)
}

func TestStackUnderflowOnBareAdd(t *testing.T) {
	_, err := runCode(t, mustHex("01"))
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestJumpDestinationOverflowIsTypeConversion(t *testing.T) {
	// PUSH32 0xff...ff; JUMP: the destination can't fit the host index type.
	code := mustHex("7f" + strings.Repeat("ff", 32) + "56")
	_, err := runCode(t, code)
	require.ErrorIs(t, err, ErrTypeConversion)
}

func TestPushAdvancesPastImmediateOnly(t *testing.T) {
	// PUSH1 1; PUSH1 2; STOP: if PUSH over-advanced pc, the second PUSH1's
	// immediate byte (0x02) would be skipped and decoded as an opcode.
	out, err := runCode(t, mustHex("6001600200"))
	require.NoError(t, err)
	require.Equal(t, KindStopped, out.Kind)
}

func TestEndOfInstructionsWithoutHalt(t *testing.T) {
	// PUSH1 1, with nothing to terminate it: pc runs off the end mid-op
	// only if truncated; here code ends cleanly after PUSH1 1 with no
	// halting opcode, so the fetch loop runs off the end.
	_, err := runCode(t, mustHex("6001"))
	require.ErrorIs(t, err, ErrEndOfInstructions)
}
