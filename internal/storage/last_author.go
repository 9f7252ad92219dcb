package storage

import (
	"errors"
	"log/slog"
)

// LastAuthorKey is the slot the most recently committed author is kept under
const LastAuthorKey = "comment_author"

// LastAuthor remembers the author of the last committed comment.
// Backend failures never reach the caller: reads fall back to "" and
// writes are dropped.
type LastAuthor struct {
	store Store
}

// NewLastAuthor wraps store. A nil store behaves like an unavailable one.
func NewLastAuthor(store Store) *LastAuthor {
	if store == nil {
		store = Unavailable{}
	}
	return &LastAuthor{store: store}
}

// Load returns the remembered author, or "" when there is none
func (l *LastAuthor) Load() string {
	if l == nil {
		return ""
	}
	author, err := l.store.Get(LastAuthorKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Debug("last author unavailable", "error", err)
		}
		return ""
	}
	return author
}

// Save remembers author for future forms
func (l *LastAuthor) Save(author string) {
	if l == nil {
		return
	}
	if err := l.store.Set(LastAuthorKey, author); err != nil {
		slog.Debug("could not store last author", "error", err)
	}
}
