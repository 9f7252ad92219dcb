package types

// CommentID identifies a committed comment. The zero value means the comment
// has not been committed yet.
type CommentID string

// IsZero reports whether the id is unassigned.
func (id CommentID) IsZero() bool {
	return id == ""
}

// String returns the id as a plain string
func (id CommentID) String() string {
	return string(id)
}

// CommentIDFromString creates a CommentID from a string value
func CommentIDFromString(s string) CommentID {
	return CommentID(s)
}
