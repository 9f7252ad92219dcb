package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Comments
	NewComment string `yaml:"new_comment"`

	// Forms
	SubmitForm string `yaml:"submit_form"`
	CancelForm string `yaml:"cancel_form"`
	NextField  string `yaml:"next_field"`
	PrevField  string `yaml:"prev_field"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewComment: "n",

		SubmitForm: "ctrl+s",
		CancelForm: "esc",
		NextField:  "tab",
		PrevField:  "shift+tab",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewComment == "" {
		k.NewComment = defaults.NewComment
	}
	if k.SubmitForm == "" {
		k.SubmitForm = defaults.SubmitForm
	}
	if k.CancelForm == "" {
		k.CancelForm = defaults.CancelForm
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
