// Copyright 2014 by the Authors
// This file is part of go-core.
//
// go-core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-core. If not, see <http://www.gnu.org/licenses/>.

// runvm executes bytecode snippets against the stack-machine interpreter.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/core-coin/go-svm/common/hexutil"
	"github.com/core-coin/go-svm/compileout"
	"github.com/core-coin/go-svm/core/vm"
	"github.com/core-coin/go-svm/log"
	"github.com/core-coin/go-svm/selector"
)

var (
	CodeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "runtime bytecode as hex, e.g. 0x6001600101",
	}
	CodeFileFlag = cli.StringFlag{
		Name:  "codefile",
		Usage: "file containing runtime bytecode hex. '-' reads stdin",
	}
	CompileOutFlag = cli.StringFlag{
		Name:  "compileout",
		Usage: "Remix-style compiler JSON output file ({\"object\":..,\"opcodes\":..})",
	}
	ConstructorFlag = cli.StringFlag{
		Name:  "constructor",
		Usage: "constructor bytecode as hex; when set runs the two-phase construct-then-call protocol with this as the constructor, and the --code/--codefile/--compileout code is not executed",
	}
	ValueFlag = cli.StringFlag{
		Name:  "value",
		Usage: "message value as hex, e.g. 0x01",
	}
	CallerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "message caller as hex",
	}
	InputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "call data as hex",
	}
	SelectorFlag = cli.StringFlag{
		Name:  "method",
		Usage: "method signature, e.g. \"get()\"; its 4-byte selector starts the call data, followed by --input if given, else by 28 zero bytes",
	}
	StorageFlag = cli.StringFlag{
		Name:  "storage",
		Usage: "path to a JSON file backing Storage; defaults to an in-memory store",
	}
	TraceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "print a per-instruction trace to stderr as JSON",
	}
	DebugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "verbose logging",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "runvm"
	app.Usage = "run bytecode against the stack-machine interpreter"
	app.Flags = []cli.Flag{
		CodeFlag, CodeFileFlag, CompileOutFlag, ConstructorFlag,
		ValueFlag, CallerFlag, InputFlag, SelectorFlag,
		StorageFlag, TraceFlag, DebugFlag,
	}
	app.Action = runAction
	app.Commands = []cli.Command{disasmCommand}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var disasmCommand = cli.Command{
	Name:  "disasm",
	Usage: "disassemble a bytecode file",
	Flags: []cli.Flag{CodeFlag, CodeFileFlag},
	Action: func(ctx *cli.Context) error {
		code, err := loadCode(ctx)
		if err != nil {
			return err
		}
		for _, line := range vm.Disassemble(code) {
			fmt.Println(line)
		}
		return nil
	},
}

func runAction(ctx *cli.Context) error {
	if ctx.Bool(DebugFlag.Name) {
		log.SetHandler(log.TerminalHandler(os.Stderr, true))
	}

	code, err := loadCode(ctx)
	if err != nil {
		return err
	}

	message := vm.Message{
		Value:  parseWord(ctx.String(ValueFlag.Name)),
		Caller: parseWord(ctx.String(CallerFlag.Name)),
		Data:   loadInput(ctx),
	}

	storage := loadStorage(ctx)
	cfg := vm.Config{}
	var tracer *vm.StructLogger
	if ctx.Bool(TraceFlag.Name) {
		tracer = vm.NewStructLogger()
		cfg.Tracer = tracer
	}

	var out []byte
	if constructor := ctx.String(ConstructorFlag.Name); constructor != "" {
		out, err = vm.SendMessageToContractWithConfig(message, hexutil.Decode(constructor), storage, cfg)
	} else {
		in := vm.NewInterpreter(code, message, storage, cfg)
		defer in.Release()
		var outcome vm.Outcome
		outcome, err = in.Execute()
		if err == nil {
			switch outcome.Kind {
			case vm.KindReturned:
				out = outcome.Data
			case vm.KindReverted:
				err = &vm.ContractError{Revert: &vm.Revert{Data: outcome.Data}}
			case vm.KindStopped:
				out = nil
			}
		}
	}

	if tracer != nil {
		_ = tracer.WriteTrace(os.Stderr)
	}

	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(out))
	return nil
}

func loadCode(ctx *cli.Context) ([]byte, error) {
	if compileOut := ctx.String(CompileOutFlag.Name); compileOut != "" {
		result, err := compileout.ReadFile(compileOut)
		if err != nil {
			return nil, err
		}
		return result.Bytecode(), nil
	}
	if code := ctx.String(CodeFlag.Name); code != "" {
		return hexutil.Decode(code), nil
	}
	if file := ctx.String(CodeFileFlag.Name); file != "" {
		var contents []byte
		var err error
		if file == "-" {
			contents, err = ioutil.ReadAll(os.Stdin)
		} else {
			contents, err = ioutil.ReadFile(file)
		}
		if err != nil {
			return nil, err
		}
		return hexutil.Decode(strings.TrimSpace(string(contents))), nil
	}
	return nil, fmt.Errorf("one of --code, --codefile or --compileout is required")
}

func loadInput(ctx *cli.Context) []byte {
	if method := ctx.String(SelectorFlag.Name); method != "" {
		data := selector.CallData(method)
		if extra := ctx.String(InputFlag.Name); extra != "" {
			return append(data[:4:4], hexutil.Decode(extra)...)
		}
		return data
	}
	if input := ctx.String(InputFlag.Name); input != "" {
		return hexutil.Decode(input)
	}
	return nil
}

func loadStorage(ctx *cli.Context) vm.Storage {
	if path := ctx.String(StorageFlag.Name); path != "" {
		return vm.NewFileStorage(path)
	}
	return vm.NewMapStorage()
}

func parseWord(s string) vm.Word {
	if s == "" {
		return vm.ZeroWord()
	}
	return vm.WordFromBeBytes(hexutil.Decode(s))
}
