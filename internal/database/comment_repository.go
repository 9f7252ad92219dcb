package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/types"
)

// CommentRepo stores committed comments
type CommentRepo struct {
	db *sql.DB
}

// NewCommentRepo creates a CommentRepo over db
func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Save inserts a committed comment. Uncommitted comments are rejected.
func (r *CommentRepo) Save(ctx context.Context, c models.Record) error {
	if c.IsNew() {
		return fmt.Errorf("cannot save uncommitted comment")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (id, author, text) VALUES (?, ?, ?)",
		c.ID().String(), c.Get(models.FieldAuthor), c.Get(models.FieldText),
	)
	if err != nil {
		if exists, _ := r.exists(ctx, c.ID()); exists {
			return fmt.Errorf("%w: %s", models.ErrDuplicateCommentID, c.ID())
		}
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

// Get loads one comment by id
func (r *CommentRepo) Get(ctx context.Context, id types.CommentID) (*models.Comment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, author, text, created_at FROM comments WHERE id = ?", id.String())

	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrCommentNotFound, id)
	}
	return c, err
}

// List returns all comments in the order they were saved
func (r *CommentRepo) List(ctx context.Context) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, author, text, created_at FROM comments ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Error("error closing rows", "error", closeErr)
		}
	}()

	var comments []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// AddNotifier is a collection that announces added records
type AddNotifier interface {
	OnAdd(fn func(models.Record)) *events.Subscription
}

// Mirror saves every record added to source. Failures are logged; the
// in-memory collection stays authoritative for the running session.
func (r *CommentRepo) Mirror(source AddNotifier) *events.Subscription {
	return source.OnAdd(func(rec models.Record) {
		ctx, cancel := withTimeout()
		defer cancel()
		if err := r.Save(ctx, rec); err != nil {
			slog.Error("failed to mirror comment", "id", rec.ID(), "error", err)
			return
		}
		if c, ok := rec.(*models.Comment); ok && c.CreatedAt().IsZero() {
			c.SetCreatedAt(time.Now())
		}
	})
}

func (r *CommentRepo) exists(ctx context.Context, id types.CommentID) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE id = ?", id.String()).Scan(&n)
	return n > 0, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(s scanner) (*models.Comment, error) {
	var (
		id, author, text string
		createdAt        sql.NullTime
	)
	if err := s.Scan(&id, &author, &text, &createdAt); err != nil {
		return nil, err
	}
	return models.RestoreComment(types.CommentID(id), author, text, createdAt.Time), nil
}
