package main

import (
	"fmt"
	"io"
	"os"

	"github.com/CarterMcClellan/cbl/lib"
)

func main() {
	script, err := loadScript(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, d := range script.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
	if len(script.Diagnostics) > 0 {
		os.Exit(65)
	}

	interpreter := lib.NewInterpreter(os.Stdout)
	if err := interpreter.Interpret(script.Statements); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}
}

func loadScript(args []string) (lib.Script, error) {
	if len(args) > 1 {
		return lib.Script{}, fmt.Errorf("usage: cbl [script]")
	}

	if len(args) == 1 {
		return lib.LoadScriptFile(args[0])
	}

	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return lib.Script{}, err
	}
	return lib.ParseSource("stdin", string(bytes)), nil
}
