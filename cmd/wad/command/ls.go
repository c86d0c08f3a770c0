package command

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/printer"
	"github.com/tdl-project/tdl/internal/wad"
)

// NewLsCmd wires up:
//
//	tdl wad ls
func NewLsCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List imported WADs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.WadStore()
			if err != nil {
				return err
			}
			ids, err := store.IDs()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				var entry wad.Entry
				if err := store.Get(id, &entry); err != nil {
					return err
				}
				rows = append(rows, []string{
					entry.Name,
					entry.Title,
					entry.Author,
					entry.ReleaseDate,
					strconv.Itoa(len(entry.Maps)),
				})
			}

			return printer.Table([]string{"File", "Title", "Author", "Released", "Maps"}, rows)
		},
	}
}
