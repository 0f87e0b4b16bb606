package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/config"
)

// DialFunc connects to a host. interop.Dial is the default; tests swap in
// an in-memory host.
type DialFunc func(ctx context.Context, cfg interop.Config, opts ...interop.Option) (*interop.Client, interop.HostInfo, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Host flags override the [host] section of the configuration file.
	Transport  string
	Executable string
	URL        string

	// Logger is built from the flags before any subcommand runs.
	Logger *slog.Logger

	// Dial connects host commands. Nil means interop.Dial.
	Dial DialFunc
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the blender-go CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blender-go",
		Short: "Go bindings for the Blender Python API",
		Long: `blender-go generates typed Go bindings from a bpy schema and drives a
running Blender host through them.

Calls made from the command line are journaled when the journal is enabled
in the configuration, and can be traced and replayed later.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				formatter := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout()}
				return formatter.fail(ExitCommandError, ErrCodeGeneric,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil, nil)
			}
			if opts.Logger == nil {
				opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath+")")
	cmd.PersistentFlags().StringVar(&opts.Transport, "transport", "", "host transport (stdio|websocket), overrides host.transport")
	cmd.PersistentFlags().StringVar(&opts.Executable, "executable", "", "Blender executable, overrides host.executable")
	cmd.PersistentFlags().StringVar(&opts.URL, "url", "", "bridge websocket url, overrides host.url")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewCallCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// newLogger writes text logs to w. Only warnings are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logger returns the configured logger, discarding output when commands
// run without the root command.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// loadConfig reads the configuration file and puts the host flags over it.
func (o *RootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.Transport == "" && o.Executable == "" && o.URL == "" {
		return cfg, nil
	}
	if o.Transport != "" {
		cfg.Host.Transport = o.Transport
	}
	if o.Executable != "" {
		cfg.Host.Executable = o.Executable
	}
	if o.URL != "" {
		cfg.Host.URL = o.URL
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("host flags: %w", err)
	}
	return cfg, nil
}

// dial returns the configured dial function.
func (o *RootOptions) dial() DialFunc {
	if o.Dial == nil {
		return interop.Dial
	}
	return o.Dial
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
