package command

import (
	"errors"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/printer"
	"github.com/tdl-project/tdl/internal/releases"
)

// NewLsCmd wires up:
//
//	tdl source-port ls
//
// Every supported port is listed with its installed version and the
// latest published one. Latest versions come through the release
// cache, so at most one remote lookup per port per day happens here.
func NewLsCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List supported source ports",
		Long:  "Lists every supported source port with its installed and latest released version",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := f.Settings()
			if err != nil {
				return err
			}
			app, err := repo.Get()
			if err != nil {
				return err
			}
			cache, err := f.ReleaseCache()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(ports.All()))
			for _, port := range ports.All() {
				installed := "-"
				if sp, ok := app.InstalledPort(port); ok {
					installed = sp.Version
				}

				latest := latestVersion(cache, port)
				if installed != "-" && latest != "-" && latest != installed {
					latest = color.YellowString("%s (update available)", latest)
				}
				rows = append(rows, []string{port.String(), installed, latest})
			}

			return printer.Table([]string{"Source Port", "Installed", "Latest"}, rows)
		},
	}
}

func latestVersion(cache *releases.Cache, port ports.Port) string {
	release, err := cache.LatestRelease(port)
	if err != nil {
		var noRelease *releases.NoReleaseError
		if !errors.As(err, &noRelease) {
			log.Warn().Err(err).Stringer("port", port).Msg("latest release lookup failed")
		}
		return "-"
	}
	return release.Version
}
