package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

const sceneSeed = `
objects:
  - path: bpy.context.scene
    class: Scene
    props:
      name: Scene
      frame_current: 1
      camera: null
    readonly: [name]
  - path: bpy.data.objects
    class: BlendDataObjects
    items:
      - key: Camera
        class: Object
        props: {name: Camera}
`

func parse(t *testing.T, body string) *Scenario {
	t.Helper()
	scenario, err := ParseScenario([]byte("name: inline\ndescription: inline scenario\n" + sceneSeed + body))
	require.NoError(t, err)
	return scenario
}

func TestRun_MinimalScenario(t *testing.T) {
	scenario := parse(t, `
steps:
  - get: bpy.context.scene.frame_current
    expect: 1
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "scenario-inline", result.SessionID)
	assert.Equal(t, "4.1.0", result.HostVersion)

	// hello + one get
	require.Len(t, result.Transcript, 2)
	assert.Equal(t, "hello", result.Transcript[0].Op)
	assert.Equal(t, int64(1), result.Transcript[0].Seq)
	assert.Equal(t, "get", result.Transcript[1].Op)
	assert.Equal(t, ir.IRInt(1), result.Transcript[1].Value)
}

func TestRun_SetAndReference(t *testing.T) {
	scenario := parse(t, `
steps:
  - set: bpy.context.scene.camera
    value: {$ref: 'bpy.data.objects["Camera"]'}
  - get: bpy.context.scene.camera.name
    expect: Camera
  - set: bpy.context.scene.camera
    value: null
  - get: bpy.context.scene.camera
    expect: null
assertions:
  - type: final_value
    path: bpy.context.scene.camera
    expect: null
  - type: no_errors
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, ir.IRRef{Path: `bpy.data.objects["Camera"]`}, result.Transcript[1].Args)
}

func TestRun_ExpectationMismatch(t *testing.T) {
	scenario := parse(t, `
steps:
  - get: bpy.context.scene.frame_current
    expect: 1.0
  - get: bpy.context.scene.name
    expect_error: AttributeError
  - get: bpy.context.scene.missing
    expect_error: KeyError
  - get: bpy.context.scene.missing
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)

	assert.Contains(t, result.Errors[0], "steps[0]")
	assert.Contains(t, result.Errors[0], "expected 1.0, got 1", "ints and floats are distinct")
	assert.Contains(t, result.Errors[1], `expected AttributeError, got "Scene"`)
	assert.Contains(t, result.Errors[2], "expected KeyError, got AttributeError")
	assert.Contains(t, result.Errors[3], "steps[3]")

	// Failed steps still run and are journaled.
	assert.Len(t, result.Transcript, 5)
}

func TestRun_ExpectedErrorAfterUnsentStep(t *testing.T) {
	scenario := parse(t, `
steps:
  - set: bpy.context.scene.camera
    value: {$ref: 5}
  - get: bpy.context.scene.missing
    expect_error: AttributeError
assertions:
  - type: no_errors
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1, "errors: %v", result.Errors)
	assert.Contains(t, result.Errors[0], "steps[0]")
	assert.Contains(t, result.Errors[0], "$ref must be a string")

	// hello + the get; the bad set never left the client.
	require.Len(t, result.Transcript, 2)
	assert.Equal(t, "get", result.Transcript[1].Op)
}

func TestRun_AssertionFailures(t *testing.T) {
	scenario := parse(t, `
steps:
  - set: bpy.context.scene.frame_current
    value: 10
  - set: bpy.context.scene.name
    value: Other
assertions:
  - type: call_count
    op: set
    count: 1
  - type: final_value
    path: bpy.context.scene.frame_current
    expect: 11
  - type: no_errors
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)

	joined := strings.Join(result.Errors, "\n")
	assert.Contains(t, joined, "steps[1]", "the unexpected read-only error fails its step")
	assert.Contains(t, joined, "Assertion failed: call_count")
	assert.Contains(t, joined, "Assertion failed: final_value")
	assert.Contains(t, joined, "Assertion failed: no_errors")
}

func TestRun_CustomSessionAndVersion(t *testing.T) {
	scenario := parse(t, `
host_version: "3.6.2"
session_id: fixed-session
steps:
  - len: bpy.data.objects
    expect: 1
`)

	result, err := Run(t.Context(), scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "fixed-session", result.SessionID)
	assert.Equal(t, "3.6.2", result.HostVersion)
	for _, rec := range result.Transcript {
		assert.Equal(t, "fixed-session", rec.SessionID)
	}
}

func TestRun_IncompatibleHost(t *testing.T) {
	scenario := parse(t, `
host_version: "2.80.0"
steps:
  - get: bpy.context.scene.name
`)

	_, err := Run(t.Context(), scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario inline")
}

func TestRun_BadSeed(t *testing.T) {
	scenario := parse(t, `
steps:
  - get: bpy.context.scene.name
`)
	scenario.Objects[0].Props["bad"] = map[string]any{"$ref": 42}

	_, err := Run(t.Context(), scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed host")
}

func TestRun_Deterministic(t *testing.T) {
	path := filepath.Join("testdata", "scenarios", "scene_frames.yaml")

	var snapshots [][]byte
	for range 2 {
		scenario, err := LoadScenario(path)
		require.NoError(t, err)
		result, err := Run(t.Context(), scenario)
		require.NoError(t, err)
		data, err := Snapshot(result)
		require.NoError(t, err)
		snapshots = append(snapshots, data)

		ids := make([]string, len(result.Transcript))
		for i, rec := range result.Transcript {
			ids[i] = rec.ID
		}
		assert.Equal(t, ir.MustCallID("scenario-scene_frames", 1, "hello", "", ir.IRNull{}), ids[0])
	}
	assert.Equal(t, snapshots[0], snapshots[1])
}
