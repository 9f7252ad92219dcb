package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/storage"
	"github.com/thenoetrevino/remark/internal/types"
)

func newCommitted(id, author, text string) *models.Comment {
	c := models.NewComment(models.Fields{models.FieldAuthor: author, models.FieldText: text})
	c.AssignID(types.CommentID(id))
	return c
}

// ============================================================================
// COMMENT REPOSITORY
// ============================================================================

func TestCommentRepo_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newCommitted("b", "Bob", "First")))
	require.NoError(t, repo.Save(ctx, newCommitted("a", "Ann", "Hi")))

	comments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, types.CommentID("b"), comments[0].ID())
	assert.Equal(t, "Ann", comments[1].Author())
	assert.Equal(t, "Hi", comments[1].Text())
	assert.False(t, comments[1].CreatedAt().IsZero())
}

func TestCommentRepo_RejectsUncommittedAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	err := repo.Save(ctx, models.NewComment(nil))
	assert.Error(t, err)

	require.NoError(t, repo.Save(ctx, newCommitted("1", "Ann", "Hi")))
	err = repo.Save(ctx, newCommitted("1", "Bob", "Yo"))
	assert.ErrorIs(t, err, models.ErrDuplicateCommentID)
}

func TestCommentRepo_GetMissing(t *testing.T) {
	repo := NewCommentRepo(setupTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
}

func TestCommentRepo_MirrorSavesAddedRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepo(db)
	coll := collection.New()

	sub := repo.Mirror(coll)
	coll.Add(newCommitted("1", "Ann", "Hi"))

	got, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Author())

	sub.Release()
	coll.Add(newCommitted("2", "Bob", "Yo"))
	_, err = repo.Get(context.Background(), "2")
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
}

// ============================================================================
// KV STORE
// ============================================================================

func TestKVStore_LastAuthor(t *testing.T) {
	kv := NewKVStore(setupTestDB(t))

	_, err := kv.Get(storage.LastAuthorKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	la := storage.NewLastAuthor(kv)
	la.Save("Ann")
	la.Save("Bob")
	assert.Equal(t, "Bob", la.Load())
}

func TestKVStore_ClosedDatabaseDegrades(t *testing.T) {
	db := setupTestDB(t)
	kv := NewKVStore(db)
	require.NoError(t, db.Close())

	la := storage.NewLastAuthor(kv)
	assert.NotPanics(t, func() { la.Save("Ann") })
	assert.Equal(t, "", la.Load())
}

// ============================================================================
// ID SEQUENCE
// ============================================================================

func TestIDSequence_IssuesIncreasingIDs(t *testing.T) {
	seq := NewIDSequence(setupTestDB(t))

	assert.Equal(t, types.CommentID("1"), seq.NextID())
	assert.Equal(t, types.CommentID("2"), seq.NextID())
}

func TestIDSequence_FallsBackWhenDatabaseFails(t *testing.T) {
	db := setupTestDB(t)
	seq := NewIDSequence(db)
	seq.Fallback = &ids.Sequence{Start: 100}
	require.NoError(t, db.Close())

	assert.Equal(t, types.CommentID("101"), seq.NextID())
}

// ============================================================================
// PERSISTENCE
// ============================================================================

func TestInitDB_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "comments.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewCommentRepo(db).Save(ctx, newCommitted("1", "Ann", "Hi")))
	storage.NewLastAuthor(NewKVStore(db)).Save("Ann")
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	comments, err := NewCommentRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ann", storage.NewLastAuthor(NewKVStore(db)).Load())
}
