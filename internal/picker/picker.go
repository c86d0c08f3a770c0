// Package picker wraps interactive prompt forms.
package picker

import (
	"github.com/charmbracelet/huh"
)

// Select shows an interactive selection prompt and returns the chosen
// value.
func Select(title string, options []string) (string, error) {
	var value string

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm shows a yes/no prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
