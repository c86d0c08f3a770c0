// Package sourceport groups the source-port management commands.
package sourceport

import (
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/cmd/sourceport/command"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "source-port",
		Aliases: []string{"sp"},
		Short:   "Manage Doom source ports",
		Long:    "Commands to register, list and install Doom source ports",
	}

	rootCmd.AddCommand(command.NewAddCmd(f))
	rootCmd.AddCommand(command.NewLsCmd(f))
	rootCmd.AddCommand(command.NewInstallCmd(f))

	return rootCmd
}
