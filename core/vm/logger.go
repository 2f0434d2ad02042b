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
	"encoding/hex"
	"encoding/json"
	"io"
)

// StructLog is one step of execution, adapted from the teacher's
// logger_json.go StructLog (there stripped of the energy/refund/depth
// fields this core has no use for).
type StructLog struct {
	Pc     uint64   `json:"pc"`
	Op     string   `json:"op"`
	Stack  []string `json:"stack,omitempty"`
	Memory string   `json:"memory,omitempty"`
}

// StructLogger accumulates one StructLog per executed instruction. Attach
// it via Config.Tracer to capture a full execution trace.
type StructLogger struct {
	logs []StructLog
}

// NewStructLogger returns an empty StructLogger.
func NewStructLogger() *StructLogger {
	return &StructLogger{}
}

// CaptureState implements Tracer.
func (l *StructLogger) CaptureState(pc uint64, op OpCode, stack, memory []byte) {
	l.logs = append(l.logs, StructLog{
		Pc:     pc,
		Op:     op.String(),
		Memory: encodeMemory(memory),
	})
}

func encodeMemory(memory []byte) string {
	if len(memory) == 0 {
		return ""
	}
	return hex.EncodeToString(memory)
}

// Logs returns the accumulated trace steps in execution order.
func (l *StructLogger) Logs() []StructLog {
	return l.logs
}

// WriteTrace writes the accumulated trace to w as newline-delimited JSON,
// one StructLog per line, matching the teacher's logger_json.go output
// shape.
func (l *StructLogger) WriteTrace(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, entry := range l.logs {
		if err := enc.Encode(entry); err != nil {
			return err
		}
	}
	return nil
}
