package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores_GetSet(t *testing.T) {
	disk, err := NewDisk(filepath.Join(t.TempDir(), "kv"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		store Store
	}{
		{name: "memory", store: NewMemory()},
		{name: "disk", store: disk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.store.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, tt.store.Set("k", "v1"))
			require.NoError(t, tt.store.Set("k", "v2"))

			got, err := tt.store.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "v2", got)
		})
	}
}

func TestDisk_PersistsAcrossInstances(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kv")

	first, err := NewDisk(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(LastAuthorKey, "Ann"))

	second, err := NewDisk(dir)
	require.NoError(t, err)
	got, err := second.Get(LastAuthorKey)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)

	_, err = os.Stat(filepath.Join(dir, LastAuthorKey))
	assert.NoError(t, err)
}

type failingStore struct{ sets int }

func (f *failingStore) Get(string) (string, error) { return "", errors.New("boom") }
func (f *failingStore) Set(string, string) error {
	f.sets++
	return errors.New("boom")
}

func TestLastAuthor_RoundTrip(t *testing.T) {
	la := NewLastAuthor(NewMemory())

	assert.Equal(t, "", la.Load())
	la.Save("Ann")
	assert.Equal(t, "Ann", la.Load())
}

func TestLastAuthor_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		la   *LastAuthor
	}{
		{name: "nil store", la: NewLastAuthor(nil)},
		{name: "unavailable", la: NewLastAuthor(Unavailable{})},
		{name: "failing backend", la: NewLastAuthor(&failingStore{})},
		{name: "nil receiver", la: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { tt.la.Save("Ann") })
			assert.Equal(t, "", tt.la.Load())
		})
	}
}

func TestLastAuthor_UsesCommentAuthorKey(t *testing.T) {
	mem := NewMemory()
	NewLastAuthor(mem).Save("Ann")

	got, err := mem.Get("comment_author")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
}
