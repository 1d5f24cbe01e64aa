package interactivity

import (
	"github.com/charmbracelet/huh"
)

// ConfirmPrompt renders a yes/no form in the terminal. Aborting the form
// (ctrl-c, closed input) surfaces as an error so callers can treat it as a
// refusal.
type ConfirmPrompt struct{}

func (ConfirmPrompt) Confirm(message string) (bool, error) {
	var confirm bool

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&confirm),
	))

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
