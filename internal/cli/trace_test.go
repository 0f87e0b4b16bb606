package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/interop/interoptest"
	"github.com/abyssparanoia/blender-go/internal/store"
)

// recordSession journals a short session against h into the database at
// path: a handshake, two reads, a write and a failed read.
func recordSession(t *testing.T, path, sessionID string, h *interoptest.Host) {
	t.Helper()
	ctx := t.Context()

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	c := interop.New(interoptest.Transport(h),
		interop.WithRecorder(store.NewRecorder(st)),
		interop.WithSessionID(sessionID))
	defer c.Close()

	_, err = c.Hello(ctx)
	require.NoError(t, err)
	_, err = interop.GetString(ctx, c, "bpy.context.scene.name")
	require.NoError(t, err)
	_, err = interop.GetInteger(ctx, c, "bpy.context.scene.frame_current")
	require.NoError(t, err)
	require.NoError(t, interop.SetInteger(ctx, c, "bpy.context.scene.frame_current", 24))
	_, err = interop.GetString(ctx, c, "bpy.context.scene.missing")
	require.Error(t, err)
}

func TestTraceMissingDatabaseFlag(t *testing.T) {
	_, err := execute(t, &RootOptions{}, "trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestTraceDatabaseNotFound(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "trace", "--db", filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "journal not found")
}

func TestTraceEmptyJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	st, err := store.Open(db)
	require.NoError(t, err)
	st.Close()

	out, err := execute(t, &RootOptions{}, "trace", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "journal has no sessions")
}

func TestTraceLatestSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	recordSession(t, db, "first", sceneHost())
	recordSession(t, db, "second", sceneHost())

	out, err := execute(t, &RootOptions{}, "trace", "--db", db)
	require.NoError(t, err)

	assert.Contains(t, out, "Session second (host 4.1.0, protocol 1, fake)")
	assert.Contains(t, out, `[2] get bpy.context.scene.name -> "Scene"`)
	assert.Contains(t, out, "[4] set bpy.context.scene.frame_current 24 -> null")
	assert.Contains(t, out, "[5] get bpy.context.scene.missing ✗ AttributeError: 'Scene' object has no attribute 'missing'")
	assert.Contains(t, out, "5 call(s): 4 ok, 1 error(s)")
}

func TestTraceFiltersJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	recordSession(t, db, "session-1", sceneHost())

	tests := []struct {
		name  string
		args  []string
		total int
		ops   map[string]int
	}{
		{"all", nil, 5, map[string]int{"hello": 1, "get": 3, "set": 1}},
		{"op", []string{"--op", "get"}, 3, map[string]int{"get": 3}},
		{"prefix", []string{"--prefix", "bpy.context.scene.frame"}, 2, map[string]int{"get": 1, "set": 1}},
		{"outcome", []string{"--outcome", "error"}, 1, map[string]int{"get": 1}},
		{"limit", []string{"--limit", "2"}, 2, map[string]int{"hello": 1, "get": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json", "trace", "--db", db, "--session", "session-1"}, tt.args...)
			out, err := execute(t, &RootOptions{}, args...)
			require.NoError(t, err)

			var resp struct {
				Status string `json:"status"`
				Data   struct {
					Calls []struct {
						Seq int64  `json:"seq"`
						Op  string `json:"op"`
					} `json:"calls"`
					Stats TraceStats `json:"stats"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Len(t, resp.Data.Calls, tt.total)
			assert.Equal(t, tt.total, resp.Data.Stats.Total)
			assert.Equal(t, tt.ops, resp.Data.Stats.ByOp)
		})
	}
}

func TestTraceInvalidOutcome(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	recordSession(t, db, "session-1", sceneHost())

	out, err := execute(t, &RootOptions{}, "trace", "--db", db, "--outcome", "maybe")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `invalid outcome "maybe"`)
}

func TestTraceUnknownSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	recordSession(t, db, "session-1", sceneHost())

	out, err := execute(t, &RootOptions{}, "trace", "--db", db, "--session", "nobody")
	require.Error(t, err)
	assert.Contains(t, out, "session not found: nobody")
}

func TestTraceList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	recordSession(t, db, "first", sceneHost())
	recordSession(t, db, "second", sceneHost())

	out, err := execute(t, &RootOptions{}, "trace", "--db", db, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "first  host 4.1.0  fake  5 call(s)")
	assert.Contains(t, out, "second  host 4.1.0  fake  5 call(s)")
}
