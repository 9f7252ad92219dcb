// Package tui is the root Bubble Tea model: a comment list with a button
// that opens the comment form in an overlay.
package tui

import (
	"context"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/remark/internal/app"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/session"
	"github.com/thenoetrevino/remark/internal/tui/confirm"
	"github.com/thenoetrevino/remark/internal/tui/editform"
	"github.com/thenoetrevino/remark/internal/tui/forms"
	"github.com/thenoetrevino/remark/internal/tui/notifications"
	"github.com/thenoetrevino/remark/internal/tui/page"
	"github.com/thenoetrevino/remark/internal/tui/spawn"
)

const (
	headerLines = 2 // title and blank line
	buttonRow   = headerLines
	footerLines = 2 // blank line and status bar
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	comments *collection.Collection
	button   *spawn.Button
	page     *page.Page
	sessions *session.Manager
	modal    *confirm.Modal
	keys     keyMap

	// prompt is the on-screen question while the modal confirmer waits
	prompt *forms.Confirm

	list       viewport.Model
	listedRecs int
	listWidth  int

	status *notifications.Notification
	subs   []*events.Subscription

	width  int
	height int
}

// InitialModel creates the model around the application's comment
// collection. It panics only if the collection is missing.
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	sessions := session.NewManager()
	modal := confirm.NewModal()
	p := page.New()

	button, err := spawn.New(application.Comments,
		spawn.WithPage(p),
		spawn.WithSessions(sessions),
		spawn.WithFormOptions(
			editform.WithIDGenerator(application.IDs),
			editform.WithLastAuthor(application.Authors),
			editform.WithConfirmer(modal),
			editform.WithKeyMap(editform.NewKeyMap(cfg.KeyMappings)),
		),
	)
	if err != nil {
		panic(err)
	}
	p.Append(button)

	status := &notifications.Notification{}
	m := Model{
		ctx:        ctx,
		comments:   application.Comments,
		button:     button,
		page:       p,
		sessions:   sessions,
		modal:      modal,
		keys:       newKeyMap(cfg.KeyMappings),
		list:       viewport.New(),
		listedRecs: -1,
		status:     status,
	}

	m.subs = append(m.subs, application.Comments.OnAdd(func(models.Record) {
		*status = notifications.Notification{Severity: notifications.Info, Message: "Comment saved"}
	}))
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Teardown closes any open form without asking and stops listening to the
// collection
func (m Model) Teardown() {
	m.sessions.Teardown()
	for _, sub := range m.subs {
		sub.Release()
	}
}

// Button returns the new comment button
func (m Model) Button() *spawn.Button {
	return m.button
}

// Prompt returns the pending discard question, or nil
func (m Model) Prompt() *forms.Confirm {
	return m.prompt
}

// Status returns the current status bar notification
func (m Model) Status() notifications.Notification {
	return *m.status
}
