package command

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/install"
	"github.com/tdl-project/tdl/internal/ports"
)

// NewInstallCmd wires up:
//
//	tdl source-port install <port>
func NewInstallCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "install [port]",
		Short: "Download and install the latest release of a source port",
		Long:  "Looks up the latest published release of a source port, downloads it and unpacks it into the source-ports directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := ports.Parse(args[0])
			if err != nil {
				return err
			}

			cache, err := f.ReleaseCache()
			if err != nil {
				return err
			}
			release, err := cache.LatestRelease(port)
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
			if app.HasPort(port, release.Version) {
				return fmt.Errorf("%s %s is already registered", port, release.Version)
			}

			us, err := f.UserSettings()
			if err != nil {
				return err
			}
			installed, err := install.NewInstaller().Install(release, us.SourcePortsDir)
			if err != nil {
				return err
			}

			app.SourcePorts = append(app.SourcePorts, installed)
			if err := repo.Save(app); err != nil {
				return err
			}

			pterm.Success.Printfln("Installed %s %s to %s", port, installed.Version, installed.Path)
			return nil
		},
	}
}
