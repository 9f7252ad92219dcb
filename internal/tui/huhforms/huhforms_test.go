package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentKeyMap(t *testing.T) {
	km := CommentKeyMap()

	assert.Equal(t, []string{"shift+enter", "alt+enter", "ctrl+j"}, km.Text.NewLine.Keys())
	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}

func TestCreateCommentForm(t *testing.T) {
	author, text := "Ann", "Hi"
	form := CreateCommentForm(&author, &text)

	assert.NotNil(t, form)
	assert.Equal(t, "Ann", author)
	assert.Equal(t, "Hi", text)
}
