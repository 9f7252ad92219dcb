package models

import (
	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/types"
)

// Field names a value stored on a record
type Field string

const (
	FieldAuthor Field = "author"
	FieldText   Field = "text"
)

// Fields is a set of values assigned together by Record.Set
type Fields map[Field]string

// Record is the editable entity a comment form binds to.
// A record without an id has not been committed yet.
type Record interface {
	// ID returns the assigned id, or the zero CommentID for new records
	ID() types.CommentID

	// IsNew reports whether no id has been assigned
	IsNew() bool

	// AssignID sets the record id. It does not fire a change notification.
	AssignID(id types.CommentID)

	// Get returns a field value, or "" when the field was never set
	Get(field Field) string

	// Set assigns all given fields at once, then fires one change notification
	Set(fields Fields)

	// OnChange registers fn to run after every Set
	OnChange(fn func(Record)) *events.Subscription

	// OnDestroy registers fn to run when the record is destroyed
	OnDestroy(fn func(Record)) *events.Subscription

	// Destroy fires the destroy notification once
	Destroy()
}

// Compile-time verification that *Comment implements Record
var _ Record = (*Comment)(nil)
