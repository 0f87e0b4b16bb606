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

const frameScenario = `name: frames
description: "Moves the playhead"
objects:
  - path: bpy.context.scene
    class: Scene
    props:
      frame_current: 1
steps:
  - set: bpy.context.scene.frame_current
    value: 10
  - get: bpy.context.scene.frame_current
    expect: %s
`

// writeScenario writes a scenario whose final read expects want.
func writeScenario(t *testing.T, dir, file, want string) {
	t.Helper()
	content := fmt.Sprintf(frameScenario, want)
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := execute(t, &RootOptions{}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentDir(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "scenarios directory not found")
}

func TestTestCommandEmptyDir(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandHarnessScenarios(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "test", harnessScenarios, "--golden", harnessGolden)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ scene_frames")
	assert.Contains(t, out, "✓ speakers")
	assert.Contains(t, out, "Test Summary: 2 passed, 0 failed, 2 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandJSON(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "--format", "json", "test", harnessScenarios, "--golden", harnessGolden)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Passed)
	for _, s := range resp.Data.Scenarios {
		assert.True(t, s.Pass, s.Name)
		assert.Equal(t, "match", s.Golden, s.Name)
	}
}

func TestTestCommandFilter(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "test", harnessScenarios, "--golden", harnessGolden, "--filter", "speak*")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ speakers")
	assert.NotContains(t, out, "scene_frames")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "frames.yaml", "11")

	out, err := execute(t, &RootOptions{}, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ frames")
	assert.Contains(t, out, "expected 11, got 10")
	assert.Contains(t, out, "0 passed, 1 failed, 1 total")
}

func TestTestCommandFailingScenarioJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "frames.yaml", "11")

	out, err := execute(t, &RootOptions{}, "--format", "json", "test", dir)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, "1 scenario(s) failed", resp.Error.Message)
}

func TestTestCommandInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: bad\nsteps: []\n"), 0o644))

	out, err := execute(t, &RootOptions{}, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ bad.yaml")
	assert.Contains(t, out, "load:")
}

func TestTestCommandGoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "frames.yaml", "10")

	out, err := execute(t, &RootOptions{}, "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ frames (golden updated)")

	goldenPath := filepath.Join(dir, "golden", "frames.golden")
	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"scenario":"frames"`)

	out, err = execute(t, &RootOptions{}, "--format", "json", "test", dir)
	require.NoError(t, err)
	var resp struct {
		Data TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "match", resp.Data.Scenarios[0].Golden)

	require.NoError(t, os.WriteFile(goldenPath, []byte(`{"scenario":"frames","transcript":[]}`), 0o644))
	out, err = execute(t, &RootOptions{}, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "transcript does not match golden file")
}
