// Package wad groups the WAD catalog commands.
package wad

import (
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/cmd/wad/command"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wad",
		Short: "Manage the WAD collection",
		Long:  "Commands to import and list WAD files",
	}

	rootCmd.AddCommand(command.NewImportCmd(f))
	rootCmd.AddCommand(command.NewLsCmd(f))

	return rootCmd
}
