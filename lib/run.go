package lib

import (
	"bytes"
	"errors"
	"strings"
)

// Execute scans, parses and runs a single source string. It returns the
// program's printed output, or an error describing every scan/parse
// diagnostic or the runtime failure that stopped evaluation.
func Execute(source string) (string, error) {
	scanner := NewScanner(source)
	tokens, diags := scanner.ScanTokens()

	parser := NewParser(tokens)
	statements, parseDiags := parser.Parse()
	diags = append(diags, parseDiags...)

	if len(diags) > 0 {
		return "", errors.New(joinDiagnostics(diags))
	}

	var out bytes.Buffer
	interpreter := NewInterpreter(&out)
	if err := interpreter.Interpret(statements); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func joinDiagnostics(diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
