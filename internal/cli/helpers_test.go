package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/interop/interoptest"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// fakeDial connects host commands to h instead of starting Blender.
func fakeDial(h *interoptest.Host) DialFunc {
	return func(ctx context.Context, cfg interop.Config, opts ...interop.Option) (*interop.Client, interop.HostInfo, error) {
		c := interop.New(interoptest.Transport(h), opts...)
		info, err := c.Hello(ctx)
		if err != nil {
			c.Close()
			return nil, info, err
		}
		return c, info, nil
	}
}

// sceneHost is a host with a scene and a speakers collection.
func sceneHost() *interoptest.Host {
	h := interoptest.NewHost()
	h.Add("bpy.context.scene", &interoptest.Object{
		Class: "Scene",
		Props: map[string]ir.IRValue{
			"name":          ir.IRString("Scene"),
			"frame_current": ir.IRInt(1),
			"frame_end":     ir.IRInt(250),
		},
		Readonly: map[string]bool{"frame_end": true},
	})
	h.Add("bpy.data.speakers", &interoptest.Object{
		Class:      "BlendDataSpeakers",
		Collection: true,
		Items: []interoptest.Item{
			{Key: "Speaker", Object: &interoptest.Object{
				Class: "Speaker",
				Props: map[string]ir.IRValue{"name": ir.IRString("Speaker"), "volume": ir.IRFloat(1)},
			}},
		},
		Methods: map[string]interoptest.Method{
			"new": func(args ir.IRObject) (ir.IRValue, error) {
				return ir.IRRef{Path: `bpy.data.speakers["Speaker"]`}, nil
			},
		},
	})
	return h
}

// writeConfig writes a configuration with the journal at journalPath, or
// disabled when journalPath is empty, and returns its path.
func writeConfig(t *testing.T, journalPath string) string {
	t.Helper()
	content := "[host]\nexecutable = \"blender\"\n"
	if journalPath != "" {
		content += fmt.Sprintf("\n[journal]\nenabled = true\npath = '%s'\n", journalPath)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return buf.String(), err
}
