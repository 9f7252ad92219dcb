package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/remark/internal/config"
)

// keyMap holds the bindings used outside the form
type keyMap struct {
	NewComment key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		NewComment: key.NewBinding(
			key.WithKeys(km.NewComment),
			key.WithHelp(km.NewComment, "new comment"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit),
			key.WithHelp(km.Quit, "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
