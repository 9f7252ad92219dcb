// Package comment implements the line-mode comment subcommands.
package comment

import (
	"time"

	"github.com/thenoetrevino/remark/internal/models"
)

// commentJSON is the --json shape of a comment
type commentJSON struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func toJSON(r models.Record) commentJSON {
	out := commentJSON{
		ID:     r.ID().String(),
		Author: r.Get(models.FieldAuthor),
		Text:   r.Get(models.FieldText),
	}
	if c, ok := r.(*models.Comment); ok {
		out.CreatedAt = c.CreatedAt()
	}
	return out
}
