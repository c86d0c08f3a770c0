package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/wad"
)

// NewImportCmd wires up:
//
//	tdl wad import <path>
//
// The WAD's map markers are read from its directory; repeated --map
// flags in the form MAP01=Entryway give the maps display names.
func NewImportCmd(f *cmdutils.Factory) *cobra.Command {
	var (
		title       string
		author      string
		releaseDate string
		mapNames    []string
	)
	cmd := &cobra.Command{
		Use:   "import [path]",
		Short: "Import a WAD into the collection",
		Long:  "Copies a WAD file into the wads directory and catalogs its maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			metadata, err := wad.ReadMetadata(path)
			if err != nil {
				return err
			}

			names, err := parseMapNames(mapNames)
			if err != nil {
				return err
			}
			var maps []wad.MapInfo
			for _, marker := range metadata.MapLumps() {
				name, ok := names[marker]
				if !ok {
					name = marker
				}
				mi, err := wad.NewMapInfo(marker, name)
				if err != nil {
					return err
				}
				maps = append(maps, mi)
			}

			fileName := filepath.Base(path)
			id := strings.TrimSuffix(fileName, filepath.Ext(fileName))
			entry, err := wad.NewEntry(id, fileName, title, releaseDate, author, maps)
			if err != nil {
				return err
			}

			store, err := f.WadStore()
			if err != nil {
				return err
			}
			if err := store.Save(entry.ID, entry); err != nil {
				return err
			}

			us, err := f.UserSettings()
			if err != nil {
				return err
			}
			if err := copyFile(path, filepath.Join(us.WadsDir, fileName)); err != nil {
				return err
			}

			pterm.Success.Printfln("Imported %s with %d maps", fileName, len(maps))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the WAD")
	cmd.Flags().StringVar(&author, "author", "", "author of the WAD")
	cmd.Flags().StringVar(&releaseDate, "release-date", "", "release date of the WAD")
	cmd.Flags().StringArrayVar(&mapNames, "map", nil,
		"name a map, e.g. --map MAP01=Entryway (repeatable)")

	return cmd
}

func parseMapNames(pairs []string) (map[string]string, error) {
	names := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		marker, name, ok := strings.Cut(pair, "=")
		if !ok || marker == "" || name == "" {
			return nil, fmt.Errorf("invalid --map value %q, expected MARKER=NAME", pair)
		}
		names[marker] = name
	}
	return names, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}
