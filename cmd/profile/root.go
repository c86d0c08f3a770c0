// Package profile groups the play-profile commands.
package profile

import (
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/cmd/profile/command"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage play profiles",
		Long:  "Commands to manage named play configurations",
	}

	rootCmd.AddCommand(command.NewAddCmd(f))
	rootCmd.AddCommand(command.NewLsCmd(f))

	return rootCmd
}
