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

// Package compileout reads a Remix-style compiler output JSON document: a
// flat object with the deployed bytecode as a hex string under "object"
// and a disassembly listing under "opcodes". It is an external
// collaborator to the interpreter core (spec.md §1/§6), not part of it.
package compileout

import (
	"encoding/json"
	"os"

	"github.com/core-coin/go-svm/common/hexutil"
)

// Result is the shape of one Remix compile-output document.
type Result struct {
	Object  string `json:"object"`
	Opcodes string `json:"opcodes"`
}

// Bytecode decodes Object as hex, stripping an optional "0x" prefix.
func (r Result) Bytecode() []byte {
	return hexutil.Decode(r.Object)
}

// ReadFile loads and parses a Remix compile-output JSON file.
func ReadFile(path string) (Result, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	var r Result
	if err := json.Unmarshal(contents, &r); err != nil {
		return Result{}, err
	}
	return r, nil
}
