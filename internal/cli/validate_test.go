package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "validate", validSchema)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Schema valid: 4 class(es), 1 operator(s) in 1 file(s)")
}

func TestValidateCommandJSON(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "--format", "json", "validate", validSchema)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 4, resp.Data.Classes)
	assert.Equal(t, 1, resp.Data.Operators)
	assert.Empty(t, resp.Data.Errors)
}

func TestValidateCommandInvalid(t *testing.T) {
	dir := writeSchema(t, unknownBaseSchema)

	out, err := execute(t, &RootOptions{}, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Schema invalid: 1 error(s)")
	assert.Contains(t, out, "E205")
}

func TestValidateCommandInvalidJSON(t *testing.T) {
	dir := writeSchema(t, unknownBaseSchema)

	out, err := execute(t, &RootOptions{}, "--format", "json", "validate", dir)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalid, resp.Error.Code)

	details, ok := resp.Error.Details.([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "E205", details[0].(map[string]any)["code"])
}

func TestValidateCommandMissingDir(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "validate", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "schema directory not found")
}
