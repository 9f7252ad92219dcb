package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/types"
)

func committed(id, author, text string) *models.Comment {
	c := models.NewComment(models.Fields{models.FieldAuthor: author, models.FieldText: text})
	c.AssignID(types.CommentID(id))
	return c
}

func TestCollection_AddAppendsInOrder(t *testing.T) {
	c := New()
	first := committed("1", "Ann", "Hi")
	second := committed("2", "Bob", "Yo")

	c.Add(first)
	c.Add(second)

	require.Equal(t, 2, c.Len())
	assert.Same(t, first, c.All()[0])
	assert.Same(t, second, c.All()[1])

	got, ok := c.Get("2")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestCollection_AddIgnoresDuplicates(t *testing.T) {
	c := New()
	rec := committed("1", "Ann", "Hi")
	adds := 0
	c.OnAdd(func(models.Record) { adds++ })

	c.Add(rec)
	c.Add(rec)
	c.Add(committed("1", "Other", "Same id"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, adds)
}

func TestCollection_OnAddReceivesRecord(t *testing.T) {
	c := New()
	var got models.Record
	sub := c.OnAdd(func(r models.Record) { got = r })

	rec := committed("9", "Ann", "Hi")
	c.Add(rec)
	assert.Same(t, rec, got)

	sub.Release()
	got = nil
	c.Add(committed("10", "Ann", "Again"))
	assert.Nil(t, got)
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	c := New(committed("1", "Ann", "Hi"))

	all := c.All()
	all[0] = nil

	assert.NotNil(t, c.All()[0])
}
