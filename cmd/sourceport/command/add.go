package command

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/ports"
)

// NewAddCmd wires up:
//
//	tdl source-port add <port> <path> <version>
func NewAddCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "add [port] [path] [version]",
		Short: "Register an already installed source port",
		Long:  "Registers a source-port executable that is already present on this machine",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := ports.Parse(args[0])
			if err != nil {
				return err
			}
			installed, err := ports.NewInstalled(port, args[1], args[2])
			if err != nil {
				return err
			}

			repo, err := f.Settings()
			if err != nil {
				return err
			}
			app, err := repo.Get()
			if err != nil {
				return err
			}
			if app.HasPort(port, installed.Version) {
				return fmt.Errorf("there is already a %s source port with version %s. "+
					"If you want to change the path, remove it first", port, installed.Version)
			}

			app.SourcePorts = append(app.SourcePorts, installed)
			if err := repo.Save(app); err != nil {
				return err
			}

			pterm.Success.Printfln("Added %s %s", port, installed.Version)
			return nil
		},
	}
}
