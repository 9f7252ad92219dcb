package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_CommentForm(t *testing.T) {
	out, err := Render("comment-form", map[string]string{
		"title":   "New Comment",
		"author":  "AUTHOR",
		"text":    "TEXT",
		"submit":  "[Save]",
		"cancel":  "[Cancel]",
		"dismiss": "esc to close",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "New Comment")
	assert.Contains(t, out, "AUTHOR")
	assert.Contains(t, out, "TEXT")
	assert.Contains(t, out, "[Save]  [Cancel]")
	assert.Contains(t, out, "esc to close")
}

func TestRender_ErrorsOnlyWhenPresent(t *testing.T) {
	without, err := Render("comment-form", map[string]string{"author": "a", "text": "t"})
	require.NoError(t, err)
	assert.NotContains(t, without, "can not be empty")

	with, err := Render("comment-form", map[string]string{"errors": "• Author can not be empty"})
	require.NoError(t, err)
	assert.Contains(t, with, "• Author can not be empty")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRendererFunc(t *testing.T) {
	r := RendererFunc(func(name string, vars map[string]string) (string, error) {
		return name + ":" + vars["author"], nil
	})

	out, err := r.Render("x", map[string]string{"author": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "x:Ann", out)
}
