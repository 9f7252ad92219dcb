package editform

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/remark/internal/config"
)

// KeyMap holds the bindings the form reacts to
type KeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the bindings for the default key mappings
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyMappings())
}

// NewKeyMap builds bindings from configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys(km.SubmitForm),
			key.WithHelp(km.SubmitForm, "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.CancelForm),
			key.WithHelp(km.CancelForm, "cancel"),
		),
		Next: key.NewBinding(
			key.WithKeys(km.NextField),
			key.WithHelp(km.NextField, "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys(km.PrevField),
			key.WithHelp(km.PrevField, "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
	}
}
