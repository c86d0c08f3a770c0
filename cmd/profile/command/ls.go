package command

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdl-project/tdl/cmd/cmdutils"
	"github.com/tdl-project/tdl/internal/printer"
)

// NewLsCmd wires up:
//
//	tdl profile ls
func NewLsCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List play profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := f.Settings()
			if err != nil {
				return err
			}
			app, err := repo.Get()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(app.Profiles))
			for _, p := range app.Profiles {
				rows = append(rows, []string{
					p.Name,
					p.SourcePort,
					p.Skill.String(),
					strconv.FormatBool(p.Fullscreen),
					strconv.FormatBool(p.Music),
					strconv.FormatBool(p.Default),
				})
			}

			return printer.Table(
				[]string{"Name", "Source Port", "Skill", "Fullscreen", "Music", "Default"}, rows)
		},
	}
}
