package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validSchema   = "../schema/testdata/valid"
	invalidSchema = "../schema/testdata/invalid"
)

// writeSchema writes a single-file schema into a fresh directory.
func writeSchema(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.cue"), []byte(content), 0o644))
	return dir
}

const unknownBaseSchema = `package bpy

class: Lonely: {
	base: "Missing"
}
`

func TestGenerateCommand(t *testing.T) {
	out := t.TempDir()

	stdout, err := execute(t, &RootOptions{}, "generate", validSchema, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Generated")
	assert.Contains(t, stdout, "for 5 class(es)")

	for _, file := range []string{"types/doc.go", "types/speaker.go", "ops/doc.go", "ops/mesh_rip_edge.go"} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(file)))
	}

	src, err := os.ReadFile(filepath.Join(out, "types", "speaker.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by blender-go; DO NOT EDIT.")
	assert.Contains(t, string(src), "github.com/abyssparanoia/blender-go/interop")
}

func TestGenerateCommandModule(t *testing.T) {
	out := t.TempDir()

	stdout, err := execute(t, &RootOptions{}, "--format", "json", "generate", validSchema, "-o", out, "--module", "example.com/scenes")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 5, resp.Data.Classes)
	assert.Contains(t, resp.Data.Files, "types/speaker.go")
	assert.Equal(t, out, resp.Data.OutputDir)

	doc, err := os.ReadFile(filepath.Join(out, "types", "doc.go"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "package types")
}

func TestGenerateCommandMissingOutput(t *testing.T) {
	_, err := execute(t, &RootOptions{}, "generate", validSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "output" not set`)
}

func TestGenerateCommandMissingSchema(t *testing.T) {
	stdout, err := execute(t, &RootOptions{}, "generate", filepath.Join(t.TempDir(), "absent"), "-o", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E005]")
}

func TestGenerateCommandBrokenSchema(t *testing.T) {
	out := t.TempDir()

	stdout, err := execute(t, &RootOptions{}, "generate", invalidSchema, "-o", out)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E007]")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written for a broken schema")
}

func TestGenerateCommandInvalidSchema(t *testing.T) {
	dir := writeSchema(t, unknownBaseSchema)

	stdout, err := execute(t, &RootOptions{}, "generate", dir, "-o", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ schema has 1 validation error(s)")
	assert.Contains(t, stdout, `[E205] Lonely.base: unknown class "Missing"`)
}
