package editform

// Role names an addressable part of the rendered form
type Role int

const (
	RoleAuthorInput Role = iota
	RoleTextInput
	RoleErrorList
	RoleSubmit
	RoleCancel
	RoleBackgroundDismiss
)

func (r Role) String() string {
	switch r {
	case RoleAuthorInput:
		return "author input"
	case RoleTextInput:
		return "text input"
	case RoleErrorList:
		return "error list"
	case RoleSubmit:
		return "submit control"
	case RoleCancel:
		return "cancel control"
	case RoleBackgroundDismiss:
		return "background-dismiss control"
	default:
		return "unknown"
	}
}

// field keys used with the forms package
const (
	authorKey = "author"
	textKey   = "text"
)
