// Package editform implements the overlay form that creates or edits one
// comment record.
//
// A Form binds to a record on construction and stays subscribed to its change
// and destroy notifications until it is removed. Field edits never touch the
// record; only a successful Submit writes author and text back, all at once.
package editform

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/storage"
	"github.com/thenoetrevino/remark/internal/tui/confirm"
	"github.com/thenoetrevino/remark/internal/tui/forms"
	"github.com/thenoetrevino/remark/internal/tui/templates"
)

// DiscardPrompt is the question asked before throwing away edited text
const DiscardPrompt = "Are you sure not to save your changes?"

// TemplateName is the fragment the form renders through
const TemplateName = "comment-form"

// Form edits a single record
type Form struct {
	record models.Record

	fields    *forms.Form
	author    *forms.TextInput
	text      *forms.TextArea
	submitBtn *button
	cancelBtn *button

	errors []string

	subs    []events.Releaser
	success events.Signal[models.Record]
	removed events.Signal[*Form]

	ids        ids.Generator
	confirmer  confirm.Confirmer
	lastAuthor *storage.LastAuthor
	renderer   templates.Renderer
	keys       KeyMap

	rendered bool
	closed   bool
}

// Option configures a Form
type Option func(*Form)

// WithIDGenerator sets the strategy used to identify new records on commit
func WithIDGenerator(g ids.Generator) Option {
	return func(f *Form) { f.ids = g }
}

// WithConfirmer sets the prompt asked before discarding edits
func WithConfirmer(c confirm.Confirmer) Option {
	return func(f *Form) { f.confirmer = c }
}

// WithLastAuthor sets the store that supplies and remembers the default author
func WithLastAuthor(l *storage.LastAuthor) Option {
	return func(f *Form) { f.lastAuthor = l }
}

// WithRenderer replaces the template renderer
func WithRenderer(r templates.Renderer) Option {
	return func(f *Form) { f.renderer = r }
}

// WithKeyMap replaces the key bindings
func WithKeyMap(k KeyMap) Option {
	return func(f *Form) { f.keys = k }
}

// New binds a form to record. record must not be nil.
//
// Without options, new records get UUIDs, discarding edits is always
// refused, and no author is remembered.
func New(record models.Record, opts ...Option) *Form {
	f := &Form{
		record:     record,
		author:     forms.NewTextInput(authorKey, "Author", "Your name"),
		text:       forms.NewTextArea(textKey, "Text", "Write a comment...", 0),
		submitBtn:  &button{key: submitKey, label: "Save"},
		cancelBtn:  &button{key: cancelKey, label: "Cancel"},
		ids:        ids.UUID{},
		confirmer:  confirm.Always(false),
		lastAuthor: storage.NewLastAuthor(nil),
		renderer:   templates.Default,
		keys:       DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.fields = forms.NewForm(f.author, f.text, f.submitBtn, f.cancelBtn)

	f.subs = append(f.subs,
		record.OnChange(f.syncFromRecord),
		record.OnDestroy(func(models.Record) { f.Remove() }),
	)
	return f
}

// Init focuses the author field
func (f *Form) Init() tea.Cmd {
	return f.fields.Init()
}

// Render fills the fields from the record. When the record has no author the
// remembered one is used. It returns the form for chaining.
func (f *Form) Render() *Form {
	if f.closed {
		return f
	}

	author := f.record.Get(models.FieldAuthor)
	if author == "" {
		author = f.lastAuthor.Load()
	}
	f.author.SetValue(author)
	f.text.SetValue(f.record.Get(models.FieldText))
	f.rendered = true
	return f
}

// Submit validates the fields and, when they pass, commits them to the
// record, announces success and removes the form. It reports whether the
// record was committed.
func (f *Form) Submit() bool {
	if f.closed {
		return false
	}
	if !f.Validate() {
		return false
	}

	f.record.Set(models.Fields{
		models.FieldAuthor: f.author.Value(),
		models.FieldText:   f.text.Value(),
	})

	// stand-in for an id assigned by a persistence layer
	if f.record.IsNew() {
		f.record.AssignID(f.ids.NextID())
	}

	slog.Debug("comment committed", "id", f.record.ID())
	f.success.Emit(f.record)

	f.Remove()
	f.lastAuthor.Save(f.record.Get(models.FieldAuthor))
	return true
}

// Cancel removes the form without writing to the record. When the text
// differs from the record's, the user must confirm first. It reports whether
// the form is gone.
func (f *Form) Cancel() bool {
	if f.closed {
		return true
	}
	if f.Dirty() && !f.confirmer.Confirm(DiscardPrompt) {
		return false
	}
	f.Remove()
	return true
}

// DismissBackground handles a click on the overlay backdrop
func (f *Form) DismissBackground() bool {
	return f.Cancel()
}

// Dirty reports whether the text field differs from the record's text
func (f *Form) Dirty() bool {
	return f.text.Value() != f.record.Get(models.FieldText)
}

// Remove unsubscribes from the record and takes the form off the page.
// It is safe to call more than once.
func (f *Form) Remove() {
	if f.closed {
		return
	}
	f.closed = true

	for _, sub := range f.subs {
		sub.Release()
	}
	f.subs = nil
	f.success.Reset()
	f.fields.BlurAll()

	f.removed.Emit(f)
	f.removed.Reset()
}

// Closed reports whether the form has been removed
func (f *Form) Closed() bool {
	return f.closed
}

// Rendered reports whether Render has populated the fields
func (f *Form) Rendered() bool {
	return f.rendered
}

// OnSuccess registers fn to receive the record after a commit
func (f *Form) OnSuccess(fn func(models.Record)) *events.Subscription {
	return f.success.Subscribe(fn)
}

// OnRemove registers fn to run once the form is removed
func (f *Form) OnRemove(fn func()) *events.Subscription {
	return f.removed.Subscribe(func(*Form) { fn() })
}

// Record returns the bound record
func (f *Form) Record() models.Record {
	return f.record
}

// AuthorValue returns the author field contents
func (f *Form) AuthorValue() string {
	return f.author.Value()
}

// TextValue returns the text field contents
func (f *Form) TextValue() string {
	return f.text.Value()
}

// SetAuthorValue replaces the author field contents, as if typed
func (f *Form) SetAuthorValue(v string) {
	if !f.closed {
		f.author.SetValue(v)
	}
}

// SetTextValue replaces the text field contents, as if typed
func (f *Form) SetTextValue(v string) {
	if !f.closed {
		f.text.SetValue(v)
	}
}

// SetWidth sizes the input fields
func (f *Form) SetWidth(w int) {
	f.author.SetWidth(w)
	f.text.SetWidth(w)
}

// Focused returns the role that currently has keyboard focus
func (f *Form) Focused() (Role, bool) {
	switch f.fields.FocusedKey() {
	case authorKey:
		return RoleAuthorInput, true
	case textKey:
		return RoleTextInput, true
	case submitKey:
		return RoleSubmit, true
	case cancelKey:
		return RoleCancel, true
	}
	return 0, false
}

// Press activates the control with the given role, as if clicked.
// Pressing an input focuses it. It reports whether the form was closed.
func (f *Form) Press(role Role) bool {
	if f.closed {
		return true
	}
	switch role {
	case RoleSubmit:
		return f.Submit()
	case RoleCancel:
		return f.Cancel()
	case RoleBackgroundDismiss:
		return f.DismissBackground()
	case RoleAuthorInput:
		f.fields.FocusKey(authorKey)
	case RoleTextInput:
		f.fields.FocusKey(textKey)
	}
	return false
}

// Update handles key messages while the form is open
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.closed {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Submit):
			f.Submit()
			return f, nil
		case key.Matches(keyMsg, f.keys.Cancel):
			f.Cancel()
			return f, nil
		case key.Matches(keyMsg, f.keys.Next):
			return f, f.fields.Next(false)
		case key.Matches(keyMsg, f.keys.Prev):
			return f, f.fields.Next(true)
		case key.Matches(keyMsg, f.keys.Activate):
			switch f.fields.FocusedKey() {
			case submitKey:
				f.Submit()
				return f, nil
			case cancelKey:
				f.Cancel()
				return f, nil
			case authorKey:
				return f, f.fields.Next(false)
			}
		}
	}

	var cmd tea.Cmd
	f.fields, cmd = f.fields.Update(msg)
	return f, cmd
}

// syncFromRecord overwrites both fields with the record's current values,
// dropping unsaved edits
func (f *Form) syncFromRecord(r models.Record) {
	f.author.SetValue(r.Get(models.FieldAuthor))
	f.text.SetValue(r.Get(models.FieldText))
}
