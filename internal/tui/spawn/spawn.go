// Package spawn provides the "new comment" button that opens an overlay form
// and hands committed records to a collection.
package spawn

import (
	"errors"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/session"
	"github.com/thenoetrevino/remark/internal/tui/editform"
	"github.com/thenoetrevino/remark/internal/tui/overlay"
	"github.com/thenoetrevino/remark/internal/tui/page"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// ErrNoCollection is returned by New when no collection is given
var ErrNoCollection = errors.New("spawn: a target collection is required")

// Button opens a form for a fresh comment each time it is activated
type Button struct {
	collection collection.Adder
	page       *page.Page
	sessions   *session.Manager
	formOpts   []editform.Option
	label      string

	form    *editform.Form
	overlay *overlay.Overlay
}

// Option configures a Button
type Option func(*Button)

// WithPage sets the page overlays are inserted into
func WithPage(p *page.Page) Option {
	return func(b *Button) { b.page = p }
}

// WithSessions sets the manager that enforces one open form at a time
func WithSessions(m *session.Manager) Option {
	return func(b *Button) { b.sessions = m }
}

// WithFormOptions passes options to every form the button opens
func WithFormOptions(opts ...editform.Option) Option {
	return func(b *Button) { b.formOpts = append(b.formOpts, opts...) }
}

// WithLabel replaces the button text
func WithLabel(label string) Option {
	return func(b *Button) { b.label = label }
}

// New creates a button that adds committed comments to c
func New(c collection.Adder, opts ...Option) (*Button, error) {
	if c == nil {
		return nil, ErrNoCollection
	}
	if coll, ok := c.(*collection.Collection); ok && coll == nil {
		return nil, ErrNoCollection
	}

	b := &Button{
		collection: c,
		sessions:   session.Default,
		label:      "New comment",
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.page == nil {
		b.page = page.New(b)
	}
	return b, nil
}

// Activate closes whatever form is open and opens a new one for a blank
// comment. It reports false when the open form could not be closed.
func (b *Button) Activate() bool {
	var form *editform.Form
	_, ok := b.sessions.TryOpen(func() session.Session {
		form = editform.New(models.NewComment(models.Fields{}), b.formOpts...)
		return form
	})
	if !ok {
		return false
	}

	form.OnSuccess(func(r models.Record) {
		b.collection.Add(r)
	})

	ov := overlay.New(form.Render())
	ov.OnClose(func() {
		b.page.Remove(ov)
		if b.overlay == ov {
			b.overlay = nil
			b.form = nil
		}
	})
	b.page.InsertAfter(b, ov)

	b.form = form
	b.overlay = ov
	slog.Debug("comment form opened")
	return true
}

// Form returns the form opened by the last activation while it is open
func (b *Button) Form() *editform.Form {
	return b.form
}

// Overlay returns the overlay opened by the last activation while it is open
func (b *Button) Overlay() *overlay.Overlay {
	return b.overlay
}

// Page returns the page the button inserts into
func (b *Button) Page() *page.Page {
	return b.page
}

// View renders the button
func (b *Button) View() string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Create)).
		Render("+ " + b.label)
}
