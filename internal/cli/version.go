package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// VersionInfo describes this build.
type VersionInfo struct {
	Version  string `json:"version"`
	Protocol string `json:"protocol"`
	Go       string `json:"go"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print the generator and protocol versions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:  ir.GeneratorVersion,
				Protocol: ir.ProtocolVersion,
				Go:       runtime.Version(),
			}
			if rootOpts.Format == "json" {
				return newFormatter(rootOpts, cmd.OutOrStdout()).Success(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "blender-go %s (protocol %s, %s)\n", info.Version, info.Protocol, info.Go)
			return nil
		},
	}
}
