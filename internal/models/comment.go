package models

import (
	"maps"
	"time"

	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/types"
)

// Comment is a single author/text note
type Comment struct {
	id        types.CommentID
	fields    Fields
	createdAt time.Time
	destroyed bool

	changed   events.Signal[Record]
	destroySg events.Signal[Record]
}

// NewComment creates an uncommitted comment with the given initial values.
// Passing no fields yields an empty comment.
func NewComment(fields Fields) *Comment {
	c := &Comment{fields: Fields{}}
	maps.Copy(c.fields, fields)
	return c
}

// RestoreComment rebuilds a committed comment, e.g. when loading from storage.
// No notifications are fired.
func RestoreComment(id types.CommentID, author, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		fields:    Fields{FieldAuthor: author, FieldText: text},
		createdAt: createdAt,
	}
}

func (c *Comment) ID() types.CommentID {
	return c.id
}

func (c *Comment) IsNew() bool {
	return c.id.IsZero()
}

func (c *Comment) AssignID(id types.CommentID) {
	c.id = id
}

func (c *Comment) Get(field Field) string {
	return c.fields[field]
}

// Author is shorthand for Get(FieldAuthor)
func (c *Comment) Author() string {
	return c.fields[FieldAuthor]
}

// Text is shorthand for Get(FieldText)
func (c *Comment) Text() string {
	return c.fields[FieldText]
}

// CreatedAt returns the time the comment was stored, zero if it never was
func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// SetCreatedAt records when the comment was stored
func (c *Comment) SetCreatedAt(t time.Time) {
	c.createdAt = t
}

func (c *Comment) Set(fields Fields) {
	maps.Copy(c.fields, fields)
	c.changed.Emit(c)
}

func (c *Comment) OnChange(fn func(Record)) *events.Subscription {
	return c.changed.Subscribe(fn)
}

func (c *Comment) OnDestroy(fn func(Record)) *events.Subscription {
	return c.destroySg.Subscribe(fn)
}

// Destroy notifies destroy listeners and then drops every listener.
func (c *Comment) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.destroySg.Emit(c)
	c.changed.Reset()
	c.destroySg.Reset()
}

// Destroyed reports whether Destroy has been called
func (c *Comment) Destroyed() bool {
	return c.destroyed
}
