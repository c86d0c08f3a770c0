package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/cmd/iwad"
	"github.com/tdl-project/tdl/cmd/play"
	"github.com/tdl-project/tdl/cmd/profile"
	"github.com/tdl-project/tdl/cmd/sourceport"
	"github.com/tdl-project/tdl/cmd/wad"
	"github.com/tdl-project/tdl/internal/style"
	"github.com/tdl-project/tdl/internal/terminal"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	var (
		verbose bool
		noColor bool
	)
	factory := cmdutils.NewFactory()

	rootCmd := &cobra.Command{
		Use:           "tdl",
		Short:         "A personal launcher for classic Doom",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: `tdl keeps your Doom source ports, WADs and play profiles in one
place and launches the game with the right arguments.

Point TDL_DOOM_HOME_PATH at the directory your game content should
live under, then import an IWAD and go.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(noColor)
			style.Init(termInfo.ColorEnabled)

			if verbose {
				logWriter := zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
					NoColor:    noColor,
				}
				log.Logger = log.Output(logWriter)
			} else {
				// Disable logging when verbose is not enabled
				log.Logger = zerolog.Nop()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging to console")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colour output (also respects NO_COLOR env)")

	rootCmd.AddCommand(sourceport.GetRootCmd(factory))
	rootCmd.AddCommand(profile.GetRootCmd(factory))
	rootCmd.AddCommand(wad.GetRootCmd(factory))
	rootCmd.AddCommand(iwad.GetRootCmd(factory))
	rootCmd.AddCommand(play.GetRootCmd(factory))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		termInfo := terminal.Detect(noColor)
		if termInfo.IsTerminal && termInfo.ColorEnabled {
			fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tdl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
