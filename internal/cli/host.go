package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
	"github.com/abyssparanoia/blender-go/internal/store"
)

// CallResult is the output of a get, set or call command.
type CallResult struct {
	Op      string     `json:"op"`
	Path    string     `json:"path"`
	Value   ir.IRValue `json:"value"`
	Session string     `json:"session"`
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Read a property from the host",
		Long: `Read the value at a bpy accessor path and print it as JSON.

Examples:
  blender-go get bpy.context.scene.frame_current
  blender-go get 'bpy.data.objects["Cube"].location' --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHostCall(cmd, rootOpts, interop.Request{Op: interop.OpGet, Path: args[0]})
		},
	}
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <json-value>",
		Short: "Assign a property on the host",
		Long: `Assign a JSON value to a bpy accessor path. Strings must be quoted.
A host reference is written as {"$ref": "<path>"}.

Examples:
  blender-go set bpy.context.scene.frame_current 42
  blender-go set bpy.context.scene.name '"Shot 010"'
  blender-go set bpy.context.scene.camera '{"$ref": "bpy.data.objects[\"Camera\"]"}'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			value, err := ir.UnmarshalIRValue([]byte(args[1]))
			if err != nil {
				return formatter.fail(ExitCommandError, ErrCodeBadValue,
					fmt.Sprintf("invalid value %q: %v", args[1], err), nil, err)
			}
			return runHostCall(cmd, rootOpts, interop.Request{Op: interop.OpSet, Path: args[0], Value: value})
		},
	}
}

// NewCallCommand creates the call command.
func NewCallCommand(rootOpts *RootOptions) *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "call <path>",
		Short: "Call a function or operator on the host",
		Long: `Call the function at a bpy accessor path with keyword arguments given
as a JSON object.

Examples:
  blender-go call bpy.ops.mesh.primitive_cube_add --args '{"size": 2.0}'
  blender-go call bpy.data.speakers.new --args '{"name": "Speaker"}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			var kwargs ir.IRObject
			if argsJSON != "" {
				v, err := ir.UnmarshalIRValue([]byte(argsJSON))
				if err != nil {
					return formatter.fail(ExitCommandError, ErrCodeBadValue,
						fmt.Sprintf("invalid --args: %v", err), nil, err)
				}
				obj, ok := v.(ir.IRObject)
				if !ok {
					return formatter.fail(ExitCommandError, ErrCodeBadValue,
						fmt.Sprintf("invalid --args: want a JSON object, got %s", ir.Kind(v)), nil, nil)
				}
				kwargs = obj
			}
			return runHostCall(cmd, rootOpts, interop.Request{Op: interop.OpCall, Path: args[0], Args: kwargs})
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "", "keyword arguments as a JSON object")

	return cmd
}

// runHostCall connects to the configured host, issues req and prints the
// result.
func runHostCall(cmd *cobra.Command, opts *RootOptions, req interop.Request) error {
	formatter := newFormatter(opts, cmd.OutOrStdout())
	ctx := cmd.Context()

	client, closeAll, err := connect(cmd, opts, formatter)
	if err != nil {
		return err
	}
	defer closeAll()

	value, err := client.Invoke(ctx, req)
	if err != nil {
		return formatter.failCall(err)
	}

	result := CallResult{Op: string(req.Op), Path: req.Path, Value: value, Session: client.SessionID()}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	if req.Op == interop.OpSet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s set\n", req.Path)
		return nil
	}
	data, err := ir.MarshalCanonical(value)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// connect loads the configuration and dials the host, journaling the
// session when the journal is enabled. The returned func closes the client
// and then the journal.
func connect(cmd *cobra.Command, opts *RootOptions, formatter *OutputFormatter) (*interop.Client, func(), error) {
	logger := opts.logger()

	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, formatter.fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
	}
	icfg, err := cfg.Interop()
	if err != nil {
		return nil, nil, formatter.fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
	}

	clientOpts := []interop.Option{interop.WithLogger(logger)}
	var journal *store.Store
	if cfg.Journal.Enabled {
		path, err := cfg.JournalPath()
		if err != nil {
			return nil, nil, formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
		}
		journal, err = store.Open(path)
		if err != nil {
			return nil, nil, formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
		}
		clientOpts = append(clientOpts, interop.WithRecorder(store.NewRecorder(journal)))
		logger.Debug("journal enabled", "path", path)
	}

	client, info, err := opts.dial()(cmd.Context(), icfg, clientOpts...)
	if err != nil {
		if journal != nil {
			journal.Close()
		}
		return nil, nil, formatter.failCall(err)
	}
	logger.Debug("host ready", "version", info.Version, "protocol", info.Protocol, "transport", icfg.Transport)

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn("close client", "error", err)
		}
		if journal != nil {
			if err := journal.Close(); err != nil {
				logger.Warn("close journal", "error", err)
			}
		}
	}, nil
}
