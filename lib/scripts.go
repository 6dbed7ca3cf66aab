package lib

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Script is a source file pushed through the front end: raw text plus
// whatever statements and diagnostics came out of it.
type Script struct {
	Name        string
	Source      string
	Statements  []Stmt
	Diagnostics []Diagnostic
}

func LoadScriptDir(dir string) ([]Script, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	scripts := []Script{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		script, err := LoadScriptFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}

	return scripts, nil
}

func LoadScriptFile(filePath string) (Script, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Script{}, err
	}
	return ParseSource(scriptNameFromPath(filePath), string(bytes)), nil
}

// ParseSource runs the front end over one source string. Diagnostics
// ride along rather than failing the call; the caller decides whether
// to run the recovered statements anyway.
func ParseSource(name string, source string) Script {
	scanner := NewScanner(source)
	tokens, diags := scanner.ScanTokens()
	parser := NewParser(tokens)
	statements, parseDiags := parser.Parse()

	return Script{
		Name:        name,
		Source:      source,
		Statements:  statements,
		Diagnostics: append(diags, parseDiags...),
	}
}

func scriptNameFromPath(filePath string) string {
	_, fileName := path.Split(filepath.ToSlash(filePath))
	parts := strings.Split(fileName, ".")
	return parts[0]
}
