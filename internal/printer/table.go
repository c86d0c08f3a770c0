// Package printer renders tabular command output.
package printer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"

	"github.com/tdl-project/tdl/internal/style"
)

// Table prints headers and rows. When colour is enabled it renders a
// themed lipgloss table; otherwise it falls back to the pterm boxed
// table for plain-text environments.
func Table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Println(style.DimText.Render("nothing to show"))
		return nil
	}
	if style.Enabled {
		renderStyledTable(headers, rows)
		return nil
	}
	return renderPtermTable(headers, rows)
}

func renderStyledTable(headers []string, rows [][]string) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Orange).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	t := lgtable.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t = t.Row(r...)
	}

	fmt.Println(t.Render())
}

func renderPtermTable(headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	for _, r := range rows {
		data = append(data, r)
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Render()
}
