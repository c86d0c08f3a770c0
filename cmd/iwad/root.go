// Package iwad groups the IWAD commands.
package iwad

import (
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/cmd/iwad/command"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iwad",
		Short: "Manage IWADs",
		Long:  "Commands to import the base game WADs",
	}

	rootCmd.AddCommand(command.NewImportCmd(f))

	return rootCmd
}
