package huhforms

import (
	"log/slog"

	"charm.land/huh/v2"
)

// Confirmer asks yes/no questions with a blocking huh prompt on the terminal.
// An aborted prompt counts as "no".
type Confirmer struct {
	Theme huh.Theme
}

func (c Confirmer) Confirm(message string) bool {
	var answer bool
	form := CreateConfirmForm(message, &answer)
	if c.Theme != nil {
		form = form.WithTheme(c.Theme)
	}

	if err := form.Run(); err != nil {
		slog.Debug("confirmation prompt aborted", "error", err)
		return false
	}
	return answer
}
