// Package play implements the play command.
package play

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/launch"
	"github.com/tdl-project/tdl/internal/picker"
	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/wad"
)

// selection is one playable map offered by the picker.
type selection struct {
	entry wad.Entry
	warp  string
}

// GetRootCmd wires up:
//
//	tdl play [--megawad] [--map] [--profile]
//
// Without --megawad an interactive picker lists every map of every
// imported WAD.
func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	var (
		megawad     string
		mapNumber   string
		profileName string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Doom",
		Long:  "Launches a source port with an imported WAD using a play profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := f.Settings()
			if err != nil {
				return err
			}
			app, err := repo.Get()
			if err != nil {
				return err
			}

			prof, ok := app.Profile(profileName)
			if !ok {
				if profileName == "" {
					return fmt.Errorf("no default profile is set. Add one with 'tdl profile add --default'")
				}
				return fmt.Errorf("there is no profile named %s", profileName)
			}
			port, err := ports.Parse(prof.SourcePort)
			if err != nil {
				return err
			}
			installed, ok := app.InstalledPort(port)
			if !ok {
				return fmt.Errorf("no %s install is registered for profile %s", port, prof.Name)
			}

			store, err := f.WadStore()
			if err != nil {
				return err
			}
			var chosen selection
			if megawad == "" {
				chosen, err = pickMap(store)
			} else {
				chosen, err = resolveMap(store, megawad, mapNumber)
			}
			if err != nil {
				return err
			}

			us, err := f.UserSettings()
			if err != nil {
				return err
			}
			_, isIWAD := wad.KnownIWAD(chosen.entry.Name)
			dir := us.WadsDir
			if isIWAD {
				dir = us.IwadsDir
			}

			return launch.Run(launch.Session{
				Port:    installed,
				Profile: prof,
				WadPath: filepath.Join(dir, chosen.entry.Name),
				IWAD:    isIWAD,
				Warp:    chosen.warp,
			})
		},
	}

	cmd.Flags().StringVar(&megawad, "megawad", "", "imported WAD to play")
	cmd.Flags().StringVar(&mapNumber, "map", "", "map to warp to, e.g. MAP01 or E1M1")
	cmd.Flags().StringVar(&profileName, "profile", "", "profile to play with (default profile when omitted)")

	return cmd
}

// pickMap offers every map of every imported WAD in a single prompt.
func pickMap(store wadStore) (selection, error) {
	entries, err := allEntries(store)
	if err != nil {
		return selection{}, err
	}

	var options []string
	byLine := make(map[string]selection)
	for _, entry := range entries {
		for _, m := range entry.Maps {
			line := fmt.Sprintf("%s %s %s", entry.ID, m.Number, m.Name)
			options = append(options, line)
			byLine[line] = selection{entry: entry, warp: m.Warp}
		}
	}
	if len(options) == 0 {
		return selection{}, fmt.Errorf("no WADs have been imported yet. Run 'tdl wad import' or 'tdl iwad import' first")
	}

	line, err := picker.Select("Which map do you want to play?", options)
	if err != nil {
		return selection{}, err
	}
	return byLine[line], nil
}

// resolveMap looks up the named WAD and optional map without prompting.
func resolveMap(store wadStore, id, mapNumber string) (selection, error) {
	var entry wad.Entry
	if err := store.Get(id, &entry); err != nil {
		return selection{}, fmt.Errorf("no imported WAD is named %s: %w", id, err)
	}
	if mapNumber == "" {
		return selection{entry: entry}, nil
	}
	for _, m := range entry.Maps {
		if m.Number == mapNumber {
			return selection{entry: entry, warp: m.Warp}, nil
		}
	}
	return selection{}, fmt.Errorf("%s has no map %s", entry.Name, mapNumber)
}

// wadStore is the slice of the object store the play command reads.
type wadStore interface {
	Get(id string, out any) error
	IDs() ([]string, error)
}

func allEntries(store wadStore) ([]wad.Entry, error) {
	ids, err := store.IDs()
	if err != nil {
		return nil, err
	}
	entries := make([]wad.Entry, 0, len(ids))
	for _, id := range ids {
		var entry wad.Entry
		if err := store.Get(id, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
