package command

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/profile"
)

// NewAddCmd wires up:
//
//	tdl profile add <name> <port>
func NewAddCmd(f *cmdutils.Factory) *cobra.Command {
	var (
		skill      string
		fullscreen bool
		music      bool
		isDefault  bool
	)
	cmd := &cobra.Command{
		Use:   "add [name] [port]",
		Short: "Add a play profile",
		Long:  "Adds a named play configuration bound to a registered source port",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			port, err := ports.Parse(args[1])
			if err != nil {
				return err
			}
			parsedSkill, err := profile.ParseSkill(skill)
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
			if _, ok := app.InstalledPort(port); !ok {
				return fmt.Errorf("no %s install is registered. Run 'tdl source-port install %s' first",
					port, port.ID())
			}
			if _, ok := app.Profile(name); ok {
				return fmt.Errorf("there is already a profile named %s", name)
			}

			p, err := profile.New(name, port.ID(), parsedSkill, fullscreen, music, isDefault)
			if err != nil {
				return err
			}
			if isDefault {
				for i := range app.Profiles {
					app.Profiles[i].Default = false
				}
			}

			app.Profiles = append(app.Profiles, p)
			if err := repo.Save(app); err != nil {
				return err
			}

			pterm.Success.Printfln("Added profile %s", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&skill, "skill", profile.UltraViolence.String(), "difficulty the profile plays at")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", true, "run the port fullscreen")
	cmd.Flags().BoolVar(&music, "music", true, "play music")
	cmd.Flags().BoolVar(&isDefault, "default", false, "use this profile when none is named")

	return cmd
}
