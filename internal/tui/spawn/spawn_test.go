package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/session"
	"github.com/thenoetrevino/remark/internal/storage"
	"github.com/thenoetrevino/remark/internal/tui/confirm"
	"github.com/thenoetrevino/remark/internal/tui/editform"
	"github.com/thenoetrevino/remark/internal/tui/page"
)

func newButton(t *testing.T, c collection.Adder, opts ...Option) *Button {
	t.Helper()
	opts = append([]Option{WithSessions(session.NewManager())}, opts...)
	b, err := New(c, opts...)
	require.NoError(t, err)
	return b
}

func TestNew_RequiresCollection(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoCollection)

	var typedNil *collection.Collection
	_, err = New(typedNil)
	assert.ErrorIs(t, err, ErrNoCollection)
}

func TestActivate_CommitScenario(t *testing.T) {
	store := storage.NewMemory()
	c := collection.New()
	b := newButton(t, c, WithFormOptions(
		editform.WithIDGenerator(&ids.Sequence{}),
		editform.WithLastAuthor(storage.NewLastAuthor(store)),
	))

	require.True(t, b.Activate())
	form := b.Form()
	require.NotNil(t, form)
	assert.True(t, form.Rendered())
	assert.Equal(t, 2, b.Page().Len())

	form.SetAuthorValue("Ann")
	form.SetTextValue("Hi")
	require.True(t, form.Submit())

	require.Equal(t, 1, c.Len())
	got := c.All()[0]
	assert.False(t, got.IsNew())
	assert.Equal(t, "Ann", got.Get("author"))
	assert.Equal(t, "Hi", got.Get("text"))

	author, err := store.Get(storage.LastAuthorKey)
	require.NoError(t, err)
	assert.Equal(t, "Ann", author)

	assert.Nil(t, b.Overlay(), "overlay closes with its form")
	assert.Equal(t, []page.Element{b}, b.Page().Elements())
}

func TestActivate_InsertsOverlayAfterButton(t *testing.T) {
	before, after := &struct{ n int }{1}, &struct{ n int }{2}
	p := page.New(before)
	b := newButton(t, collection.New(), WithPage(p))
	p.Append(b)
	p.Append(after)

	require.True(t, b.Activate())

	assert.Equal(t, []page.Element{before, b, b.Overlay(), after}, p.Elements())
}

func TestActivate_ReplacesCleanForm(t *testing.T) {
	b := newButton(t, collection.New())

	require.True(t, b.Activate())
	first := b.Form()

	require.True(t, b.Activate())

	assert.True(t, first.Closed())
	assert.NotSame(t, first, b.Form())
	assert.Equal(t, 2, b.Page().Len(), "only one overlay on the page")
}

func TestActivate_RefusedWhenUserKeepsEdits(t *testing.T) {
	c := collection.New()
	b := newButton(t, c, WithFormOptions(editform.WithConfirmer(confirm.Always(false))))

	require.True(t, b.Activate())
	first := b.Form()
	first.SetTextValue("draft")

	assert.False(t, b.Activate())
	assert.Same(t, first, b.Form())
	assert.False(t, first.Closed())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "draft", first.TextValue())

	// still bound to its record
	first.Record().Set(models.Fields{models.FieldAuthor: "Carol", models.FieldText: "from elsewhere"})
	assert.Equal(t, "Carol", first.AuthorValue())
	assert.Equal(t, "from elsewhere", first.TextValue())
}

func TestActivate_ConfirmedDiscardOpensNewForm(t *testing.T) {
	b := newButton(t, collection.New(), WithFormOptions(editform.WithConfirmer(confirm.Always(true))))

	require.True(t, b.Activate())
	first := b.Form()
	first.SetTextValue("draft")

	require.True(t, b.Activate())
	assert.True(t, first.Closed())
	assert.Equal(t, "", first.Record().Get("text"), "discarded edits never reach the record")
}

func TestActivate_ButtonsShareOneSession(t *testing.T) {
	m := session.NewManager()
	a := newButton(t, collection.New(), WithSessions(m))
	b := newButton(t, collection.New(), WithSessions(m))

	require.True(t, a.Activate())
	require.True(t, b.Activate())

	assert.Nil(t, a.Form())
	assert.NotNil(t, b.Form())
}

func TestCancel_AddsNothing(t *testing.T) {
	c := collection.New()
	b := newButton(t, c)

	require.True(t, b.Activate())
	require.True(t, b.Form().Cancel())

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, b.Overlay())
}

func TestView(t *testing.T) {
	b := newButton(t, collection.New(), WithLabel("Comment"))
	assert.Contains(t, b.View(), "+ Comment")
}
