package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	for _, name := range []string{"pair", "limited", "clock"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))

			require.NoError(t, AssertGolden(t, scenario.Name, result))
		})
	}
}

func TestRunWithGolden(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/limited.yaml")
	require.NoError(t, err)
	require.NoError(t, RunWithGolden(t, scenario))
}

func TestTranscript(t *testing.T) {
	result := NewResult()
	result.AddTrace(OpWind, "3", "0: 1 ∘ 1")
	result.AddTrace(OpAssert, "rejects 1 points", "ok")

	assert.Equal(t, "# demo\n1 wind 3 -> 0: 1 ∘ 1\n2 assert rejects 1 points -> ok\n", string(Transcript("demo", result)))
}
