package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
)

// ConfirmDeleteAll asks before every task is removed. It answers false
// unless the user explicitly picks Yes.
func ConfirmDeleteAll(count int, colorScheme config.ColorScheme) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete all %d tasks?", count)).
				Description("This cannot be undone.").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(Theme(colorScheme))

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
