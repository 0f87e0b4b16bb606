package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Load the configuration file over the built-in defaults, apply the
--transport, --executable and --url flags, validate the result and print it
as TOML. The output is a valid configuration file.

Examples:
  blender-go config > ~/.config/blender-go/config.toml
  blender-go config --config ./ci.toml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return formatter.fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
			}
			if rootOpts.Format == "json" {
				return formatter.Success(cfg)
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	}
}
