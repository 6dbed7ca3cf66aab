package lib

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadScriptFile(t *testing.T) {
	script, err := LoadScriptFile(filepath.Join("testdata", "hello.cbl"))
	require.NoError(t, err)

	require.Equal(t, "hello", script.Name)
	require.Empty(t, script.Diagnostics)
	require.Len(t, script.Statements, 2)

	var out bytes.Buffer
	require.NoError(t, NewInterpreter(&out).Interpret(script.Statements))
	require.Equal(t, "hello world\n-4\n", out.String())
}

func TestLoadScriptFileKeepsDiagnostics(t *testing.T) {
	script, err := LoadScriptFile(filepath.Join("testdata", "broken.cbl"))
	require.NoError(t, err)

	require.Len(t, script.Diagnostics, 1)
	require.Equal(t, "[line 1] Error at ';': Expect variable name.", script.Diagnostics[0].String())

	// recovered statements are still there
	require.Len(t, script.Statements, 1)
}

func TestParseSource(t *testing.T) {
	script := ParseSource("inline", "print 1 + 2;")
	require.Equal(t, "inline", script.Name)
	require.Equal(t, "print 1 + 2;", script.Source)
	require.Empty(t, script.Diagnostics)
	require.Len(t, script.Statements, 1)

	broken := ParseSource("inline", "var ;")
	require.Len(t, broken.Diagnostics, 1)
	require.Empty(t, broken.Statements)
}

func TestLoadScriptFileMissing(t *testing.T) {
	_, err := LoadScriptFile(filepath.Join("testdata", "nope.cbl"))
	require.Error(t, err)
}

func TestLoadScriptDir(t *testing.T) {
	scripts, err := LoadScriptDir("testdata")
	require.NoError(t, err)
	require.Len(t, scripts, 2)

	names := []string{scripts[0].Name, scripts[1].Name}
	require.Contains(t, names, "hello")
	require.Contains(t, names, "broken")
}
