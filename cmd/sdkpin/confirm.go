package main

import (
	"github.com/charmbracelet/huh"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// confirmWithForm asks a yes/no question on the terminal. The answer defaults to no.
func confirmWithForm(title string) (bool, error) {
	value := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	))
	if err := runFormFunc(form); err != nil {
		return false, err
	}
	return value, nil
}
