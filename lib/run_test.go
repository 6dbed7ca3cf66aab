package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteOutput(t *testing.T) {
	output, err := Execute("print \"a\" + \"b\";\nprint 2 + 3 * 4;")
	require.NoError(t, err)
	require.Equal(t, "ab\n14\n", output)
}

func TestExecuteEmptySource(t *testing.T) {
	output, err := Execute("")
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestExecuteParseErrorMentionsEveryBrokenStatement(t *testing.T) {
	_, err := Execute("var ;\nprint 1;\n* 2;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[line 1] Error at ';': Expect variable name.")
	require.Contains(t, err.Error(), "[line 3] Error at '*': Expect expression.")
}

func TestExecuteScanDiagnosticIsAnError(t *testing.T) {
	_, err := Execute("print 1; @")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unexpected character")
}

func TestExecuteRuntimeErrorKeepsEarlierOutput(t *testing.T) {
	output, err := Execute("print 1;\nprint 1 + \"a\";")
	require.Error(t, err)
	require.Equal(t, "1\n", output)

	_, ok := err.(*RuntimeError)
	require.True(t, ok)
}
