// Package config loads the blender-go configuration file.
//
// The file is TOML and lives at ~/.config/blender-go/config.toml unless a
// path is given:
//
//	[host]
//	executable = "/Applications/Blender.app/Contents/MacOS/Blender"
//	args = ["--background", "--factory-startup", "--python-expr", "..."]
//	transport = "stdio"             # or "websocket"
//	url = "ws://127.0.0.1:8765"     # websocket only
//	call_timeout = "30s"
//	handshake_timeout = "1m"
//	version_constraint = ">= 2.93"
//
//	[journal]
//	path = "~/.config/blender-go/journal.db"
//	enabled = true
//
// Unknown keys are rejected. Paths may start with ~.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/abyssparanoia/blender-go/interop"
)

// DefaultPath is the configuration file used when no path is given.
const DefaultPath = "~/.config/blender-go/config.toml"

// Config is the whole configuration file.
type Config struct {
	Host    HostConfig    `toml:"host" json:"host"`
	Journal JournalConfig `toml:"journal" json:"journal"`
}

// HostConfig describes how to reach Blender.
type HostConfig struct {
	Executable        string   `toml:"executable" json:"executable"`
	Args              []string `toml:"args,omitempty" json:"args,omitempty"`
	Transport         string   `toml:"transport" json:"transport"`
	URL               string   `toml:"url,omitempty" json:"url,omitempty"`
	CallTimeout       string   `toml:"call_timeout" json:"call_timeout"`
	HandshakeTimeout  string   `toml:"handshake_timeout" json:"handshake_timeout"`
	VersionConstraint string   `toml:"version_constraint" json:"version_constraint"`
}

// JournalConfig controls the call journal.
type JournalConfig struct {
	Path    string `toml:"path" json:"path"`
	Enabled bool   `toml:"enabled" json:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Host: HostConfig{
			Executable:        "blender",
			Transport:         interop.TransportStdio,
			CallTimeout:       "30s",
			HandshakeTimeout:  "1m",
			VersionConstraint: interop.DefaultVersionConstraint,
		},
		Journal: JournalConfig{
			Path: "~/.config/blender-go/journal.db",
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config path %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be checked by decoding alone.
func (c Config) Validate() error {
	switch c.Host.Transport {
	case interop.TransportStdio:
		if c.Host.Executable == "" {
			return fmt.Errorf("host.executable is required for the stdio transport")
		}
	case interop.TransportWebSocket:
		if c.Host.URL == "" {
			return fmt.Errorf("host.url is required for the websocket transport")
		}
	default:
		return fmt.Errorf("host.transport: unknown transport %q (want %s or %s)",
			c.Host.Transport, interop.TransportStdio, interop.TransportWebSocket)
	}

	if _, err := parseTimeout("host.call_timeout", c.Host.CallTimeout); err != nil {
		return err
	}
	if _, err := parseTimeout("host.handshake_timeout", c.Host.HandshakeTimeout); err != nil {
		return err
	}
	if c.Host.VersionConstraint != "" {
		if _, err := interop.ParseVersionConstraint(c.Host.VersionConstraint); err != nil {
			return fmt.Errorf("host.version_constraint: %w", err)
		}
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal.path is required when the journal is enabled")
	}
	return nil
}

// parseTimeout parses a duration setting. Empty means no bound.
func parseTimeout(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

// Interop converts the host section to a dial configuration.
func (c Config) Interop() (interop.Config, error) {
	callTimeout, err := parseTimeout("host.call_timeout", c.Host.CallTimeout)
	if err != nil {
		return interop.Config{}, err
	}
	handshakeTimeout, err := parseTimeout("host.handshake_timeout", c.Host.HandshakeTimeout)
	if err != nil {
		return interop.Config{}, err
	}
	executable, err := homedir.Expand(c.Host.Executable)
	if err != nil {
		return interop.Config{}, fmt.Errorf("host.executable: %w", err)
	}
	return interop.Config{
		Transport:         c.Host.Transport,
		Executable:        executable,
		Args:              c.Host.Args,
		URL:               c.Host.URL,
		CallTimeout:       callTimeout,
		HandshakeTimeout:  handshakeTimeout,
		VersionConstraint: c.Host.VersionConstraint,
	}, nil
}

// JournalPath returns the expanded journal path, creating its directory.
func (c Config) JournalPath() (string, error) {
	path, err := homedir.Expand(c.Journal.Path)
	if err != nil {
		return "", fmt.Errorf("journal.path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create journal directory: %w", err)
	}
	return path, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}
