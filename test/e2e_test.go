package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CarterMcClellan/cbl/lib"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scriptCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

type scriptSuite struct {
	Cases []scriptCase `yaml:"cases"`
}

func loadSuite(t *testing.T) scriptSuite {
	bytes, err := os.ReadFile(filepath.Join("testdata", "scripts.yaml"))
	require.NoError(t, err)

	var suite scriptSuite
	require.NoError(t, yaml.Unmarshal(bytes, &suite))
	require.NotEmpty(t, suite.Cases)
	return suite
}

func TestScripts(t *testing.T) {
	suite := loadSuite(t)

	for _, tc := range suite.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			output, err := lib.Execute(tc.Source)

			if tc.Error != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.Error)
			} else {
				require.NoError(t, err)
			}

			// runtime failures still keep whatever printed before them;
			// static failures produce no output at all
			require.Equal(t, tc.Output, output)
		})
	}
}
