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

// Package log is a small log15-style structured logger: leveled
// Debug/Info/Warn/Error/Crit calls with key/value context, matching the
// shape go-core's own `log` package exposes (the package itself wasn't
// part of the retrieved pack, so this is authored directly against its
// dependency set: github.com/fatih/color, github.com/mattn/go-colorable,
// github.com/go-stack/stack).
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is a logging level, ordered most to least severe in declaration.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Lvl]*color.Color{
	LvlCrit:  color.New(color.FgMagenta, color.Bold),
	LvlError: color.New(color.FgRed),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
}

// Logger writes leveled, keyed messages. New returns a derived Logger
// that prepends extra context to every call it makes.
type Logger interface {
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

// Handler processes one formatted record. Write to handlers, not to
// Logger.New results, when building custom sinks.
type Handler interface {
	Log(lvl Lvl, msg string, ctx []interface{})
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

type swapHandler struct {
	mu sync.Mutex
	h  Handler
}

func (s *swapHandler) Log(lvl Lvl, msg string, ctx []interface{}) {
	s.mu.Lock()
	h := s.h
	s.mu.Unlock()
	h.Log(lvl, msg, ctx)
}

func (s *swapHandler) Swap(h Handler) {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

var root = &logger{h: &swapHandler{h: newDefaultHandler()}}

// newDefaultHandler wires stderr through go-colorable (so ANSI codes
// survive on Windows consoles) and colorizes only when stderr is an
// actual terminal, per go-isatty.
func newDefaultHandler() Handler {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return TerminalHandler(colorable.NewColorableStderr(), useColor)
}

// Root returns the root Logger, which every package-level helper
// (Debug/Info/...) writes through.
func Root() Logger { return root }

// New returns a Logger carrying ctx in addition to the root's context.
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

// SetHandler replaces the root Logger's output handler.
func SetHandler(h Handler) { root.h.Swap(h) }

func (l *logger) New(ctx ...interface{}) Logger {
	combined := make([]interface{}, 0, len(l.ctx)+len(ctx))
	combined = append(combined, l.ctx...)
	combined = append(combined, ctx...)
	return &logger{ctx: combined, h: l.h}
}

func (l *logger) write(lvl Lvl, msg string, ctx []interface{}) {
	all := make([]interface{}, 0, len(l.ctx)+len(ctx))
	all = append(all, l.ctx...)
	all = append(all, ctx...)
	l.h.Log(lvl, msg, all)
}

func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(LvlCrit, msg, ctx)
	os.Exit(1)
}

// package-level convenience aliases for Root()
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }

// terminalHandler formats records for a human terminal, colorizing the
// level tag and key names the way the teacher's formatter does.
type terminalHandler struct {
	w       io.Writer
	color   bool
	mu      sync.Mutex
	callers bool
}

// TerminalHandler returns a Handler that writes colorized, human-readable
// lines to w.
func TerminalHandler(w io.Writer, useColor bool) Handler {
	return &terminalHandler{w: w, color: useColor, callers: true}
}

func (h *terminalHandler) Log(lvl Lvl, msg string, ctx []interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ts := time.Now().Format("2006-01-02T15:04:05.000")
	levelTag := fmt.Sprintf("[%s]", lvl)
	if h.color {
		if c, ok := levelColor[lvl]; ok {
			levelTag = c.Sprint(levelTag)
		}
	}

	frame := ""
	if h.callers {
		frame = callerFrame()
	}

	fmt.Fprintf(h.w, "%s %-5s %s %s", ts, levelTag, msg, frame)
	for i := 0; i+1 < len(ctx); i += 2 {
		key := fmt.Sprint(ctx[i])
		if h.color {
			key = color.New(color.FgBlue).Sprint(key)
		}
		fmt.Fprintf(h.w, " %s=%v", key, ctx[i+1])
	}
	fmt.Fprintln(h.w)
}

// callerFrame captures the first frame outside this package, matching
// the teacher's use of go-stack/stack for caller-site breadcrumbs.
func callerFrame() string {
	for _, call := range stack.Trace().TrimRuntime() {
		if fmt.Sprintf("%+k", call) != "github.com/core-coin/go-svm/log" {
			return fmt.Sprintf("(%v)", call)
		}
	}
	return ""
}
