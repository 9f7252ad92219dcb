package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Notification is a message shown in the status bar until replaced
type Notification struct {
	Severity Severity
	Message  string
}

// Empty reports whether there is nothing to show
func (n Notification) Empty() bool {
	return n.Message == ""
}
