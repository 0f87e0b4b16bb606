package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/interop"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, interop.TransportStdio, cfg.Host.Transport)
	assert.False(t, cfg.Journal.Enabled)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
[host]
executable = "/opt/blender/blender"
args = ["--background"]
call_timeout = "5s"

[journal]
path = "/tmp/journal.db"
enabled = true
`))
	require.NoError(t, err)

	assert.Equal(t, "/opt/blender/blender", cfg.Host.Executable)
	assert.Equal(t, []string{"--background"}, cfg.Host.Args)
	assert.Equal(t, "5s", cfg.Host.CallTimeout)
	assert.Equal(t, "1m", cfg.Host.HandshakeTimeout, "unset keys keep their defaults")
	assert.Equal(t, interop.DefaultVersionConstraint, cfg.Host.VersionConstraint)
	assert.True(t, cfg.Journal.Enabled)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		wantErr string
	}{
		{"unknown key", "[host]\nexecutible = \"blender\"\n", "unknown config keys"},
		{"syntax", "[host\n", "failed to parse config"},
		{"unknown transport", "[host]\ntransport = \"tcp\"\n", `unknown transport "tcp"`},
		{"websocket without url", "[host]\ntransport = \"websocket\"\n", "host.url is required"},
		{"stdio without executable", "[host]\nexecutable = \"\"\n", "host.executable is required"},
		{"bad duration", "[host]\ncall_timeout = \"soon\"\n", "host.call_timeout"},
		{"negative duration", "[host]\nhandshake_timeout = \"-1s\"\n", "must not be negative"},
		{"bad constraint", "[host]\nversion_constraint = \"banana\"\n", "host.version_constraint"},
		{"journal without path", "[journal]\nenabled = true\npath = \"\"\n", "journal.path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.toml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[host]\ntransport = \"websocket\"\nurl = \"ws://127.0.0.1:8765\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, interop.TransportWebSocket, cfg.Host.Transport)
	assert.Equal(t, "ws://127.0.0.1:8765", cfg.Host.URL)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInterop(t *testing.T) {
	cfg := Default()
	cfg.Host.Args = []string{"--background"}
	cfg.Host.CallTimeout = "2s"
	cfg.Host.HandshakeTimeout = ""

	ic, err := cfg.Interop()
	require.NoError(t, err)
	assert.Equal(t, interop.Config{
		Transport:         interop.TransportStdio,
		Executable:        "blender",
		Args:              []string{"--background"},
		CallTimeout:       2 * time.Second,
		VersionConstraint: interop.DefaultVersionConstraint,
	}, ic)
}

func TestInterop_ExplicitZeroValues(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[host]\ncall_timeout = \"0s\"\nversion_constraint = \"\"\n"))
	require.NoError(t, err)

	ic, err := cfg.Interop()
	require.NoError(t, err)
	assert.Zero(t, ic.CallTimeout)
	assert.Empty(t, ic.VersionConstraint)
}

func TestJournalPath_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	cfg := Default()
	cfg.Journal.Path = filepath.Join(dir, "journal.db")

	path, err := cfg.JournalPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "journal.db"), path)
	assert.DirExists(t, dir)
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Host.Args = []string{"--background", "--factory-startup"}
	cfg.Journal.Enabled = true

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))

	got, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
