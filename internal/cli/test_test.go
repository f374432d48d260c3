package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	harnessScenarios = "../harness/testdata/scenarios"
	harnessGolden    = "../harness/testdata/golden"
)

// writeFailingScenario writes a scenario whose expectation cannot hold.
func writeFailingScenario(t *testing.T, dir string) string {
	t.Helper()
	schemes, err := filepath.Abs(smallSchemes)
	require.NoError(t, err)

	content := fmt.Sprintf(`name: wrong
description: "Expects the wrong cycle"
schemes:
  - %s
scheme: pair
steps:
  - wind: 11
    expect: { cycle: 2 }
`, schemes)
	path := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTestCommandPasses(t *testing.T) {
	out, err := execute(t, NewTestCommand(testRoot("text")), harnessScenarios, "--golden", harnessGolden)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ pair\n")
	assert.Contains(t, out, "✓ limited\n")
	assert.Contains(t, out, "✓ clock\n")
	assert.Contains(t, out, "Test Summary: 3 passed, 0 failed, 3 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandFilter(t *testing.T) {
	out, err := execute(t, NewTestCommand(testRoot("text")), harnessScenarios, "--golden", harnessGolden, "--filter", "pa*")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.NotContains(t, out, "limited")
}

func TestTestCommandTrace(t *testing.T) {
	out, err := execute(t, NewTestCommand(testRoot("text")),
		filepath.Join(harnessScenarios, "pair.yaml"), "--golden", harnessGolden, "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "# pair\n1 wind 7 -> 1: 0 ∘ 1\n")
}

func TestTestCommandJSON(t *testing.T) {
	out, err := execute(t, NewTestCommand(testRoot("json")), harnessScenarios, "--golden", harnessGolden)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.Passed)
	assert.Len(t, resp.Data.Scenarios, 3)
}

func TestTestCommandUpdate(t *testing.T) {
	golden := t.TempDir()
	out, err := execute(t, NewTestCommand(testRoot("text")), harnessScenarios, "--golden", golden, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ pair (golden updated)")

	written, err := os.ReadFile(filepath.Join(golden, "pair.golden"))
	require.NoError(t, err)
	expected, err := os.ReadFile(filepath.Join(harnessGolden, "pair.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))

	_, err = execute(t, NewTestCommand(testRoot("text")), harnessScenarios, "--golden", golden)
	assert.NoError(t, err)
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	golden := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(golden, "pair.golden"), []byte("# pair\n"), 0644))

	out, err := execute(t, NewTestCommand(testRoot("text")),
		filepath.Join(harnessScenarios, "pair.yaml"), "--golden", golden)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ pair")
	assert.Contains(t, out, "transcript does not match golden file")
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFailingScenario(t, dir)

	out, err := execute(t, NewTestCommand(testRoot("text")), path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")

	out, err = execute(t, NewTestCommand(testRoot("json")), path)
	require.Error(t, err)
	assert.Contains(t, out, `"E_TEST_FAILED"`)
}

func TestTestCommandInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: broken\nunknown: true\n"), 0644))

	out, err := execute(t, NewTestCommand(testRoot("text")), path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommandMissingPath(t *testing.T) {
	_, err := execute(t, NewTestCommand(testRoot("text")), "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios path not found")
}

func TestTestCommandNoScenarios(t *testing.T) {
	out, err := execute(t, NewTestCommand(testRoot("text")), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No scenarios found.\n", out)
}
