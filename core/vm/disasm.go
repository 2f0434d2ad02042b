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

import "fmt"

// Disassemble walks code the same way Code's jump-destination pre-scan
// does and renders one line per instruction, PUSH immediates included
// inline. This is a supplemental debugging aid, not part of the
// execution path; it mirrors original_source/src/instructions.rs's
// disassembly helper (there named print_instruction/dissemble).
func Disassemble(code []byte) []string {
	c := NewCode(code)
	var lines []string
	for pc := uint64(0); pc < uint64(c.Len()); {
		op := OpCode(c.At(pc))
		width := immediateWidth(op)
		if width == 0 {
			lines = append(lines, fmt.Sprintf("%04x: %s", pc, op))
			pc++
			continue
		}
		imm := c.Slice(pc+1, pc+1+uint64(width))
		lines = append(lines, fmt.Sprintf("%04x: %s 0x%x", pc, op, imm))
		pc += uint64(width) + 1
	}
	return lines
}
