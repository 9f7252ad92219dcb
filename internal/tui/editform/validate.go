package editform

// Validation messages shown in the error list
const (
	MsgAuthorEmpty = "Author can not be empty"
	MsgTextEmpty   = "Text can not be empty"
)

// Validate checks the current field contents, replacing the error list and
// the per-field markers. The record is never touched.
func (f *Form) Validate() bool {
	f.errors = f.errors[:0]

	authorEmpty := len(f.author.Value()) == 0
	f.author.SetInvalid(authorEmpty)
	if authorEmpty {
		f.errors = append(f.errors, MsgAuthorEmpty)
	}

	textEmpty := len(f.text.Value()) == 0
	f.text.SetInvalid(textEmpty)
	if textEmpty {
		f.errors = append(f.errors, MsgTextEmpty)
	}

	return len(f.errors) == 0
}

// Errors returns the messages from the last validation pass
func (f *Form) Errors() []string {
	out := make([]string, len(f.errors))
	copy(out, f.errors)
	return out
}

// HasError reports whether role carries an error marker
func (f *Form) HasError(role Role) bool {
	switch role {
	case RoleAuthorInput:
		return f.author.Invalid()
	case RoleTextInput:
		return f.text.Invalid()
	case RoleErrorList:
		return len(f.errors) > 0
	default:
		return false
	}
}
