package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidSchemes(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testRoot("text")), "testdata/schemes")
	require.NoError(t, err)
	assert.Equal(t, "✓ 2 scheme(s) valid\n  limited (filter, period 50, width 2)\n  pair (mixed, period 6, width 2)\n", out)
}

func TestValidateValidSchemesJSON(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testRoot("json")), smallSchemes)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	require.Len(t, resp.Data.Schemes, 2)
	assert.Equal(t, SchemeSummary{Name: "pair", Kind: "mixed", Period: 6, Width: 2}, resp.Data.Schemes[1])
}

func TestValidateInvalidScheme(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testRoot("text")), "testdata/invalid")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, ErrCodeRemainder+": ")
	assert.Contains(t, out, "remainder is only allowed in filter schemes")
}

func TestValidateInvalidSchemeJSON(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testRoot("json")), "testdata/invalid")
	require.Error(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "remainder", resp.Data.Errors[0].Field)
	assert.Equal(t, 2, resp.Data.Errors[0].Line)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeRemainder, resp.Error.Code)
}

func TestValidateNonExistentPath(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testRoot("text")), "/nonexistent/directory/path")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "Error [E005]")
}

func TestValidateEmptyDirectory(t *testing.T) {
	_, err := execute(t, NewValidateCommand(testRoot("text")), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNoFiles)
}
