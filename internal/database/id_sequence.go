package database

import (
	"database/sql"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/types"
)

// IDSequence issues comment ids from the comment_ids autoincrement table.
// When the database cannot issue one, Fallback is used instead.
type IDSequence struct {
	db       *sql.DB
	Fallback ids.Generator
}

// NewIDSequence creates an IDSequence over db falling back to random UUIDs
func NewIDSequence(db *sql.DB) *IDSequence {
	return &IDSequence{db: db, Fallback: ids.UUID{}}
}

// Compile-time verification that *IDSequence implements ids.Generator
var _ ids.Generator = (*IDSequence)(nil)

func (s *IDSequence) NextID() types.CommentID {
	ctx, cancel := withTimeout()
	defer cancel()

	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO comment_ids DEFAULT VALUES RETURNING id").Scan(&id)
	if err != nil {
		slog.Error("failed to issue comment id, using fallback", "error", err)
		return s.Fallback.NextID()
	}
	return types.CommentID(strconv.FormatInt(id, 10))
}
