package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/wad"
)

// NewImportCmd wires up:
//
//	tdl iwad import <path>
//
// IWADs carry their catalog metadata in a fixed table, so unlike PWAD
// import nothing needs to be supplied on the command line.
func NewImportCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Import an IWAD",
		Long:  "Copies a base game WAD into the iwads directory and catalogs its maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			entry, err := wad.EntryFromIWAD(path)
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
			if err := copyFile(path, filepath.Join(us.IwadsDir, entry.Name)); err != nil {
				return err
			}

			pterm.Success.Printfln("Imported %s (%s)", entry.Name, entry.Title)
			return nil
		},
	}
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
