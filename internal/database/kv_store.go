package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/remark/internal/storage"
)

// KVStore is a storage.Store kept in the kv table
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a KVStore over db
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Compile-time verification that *KVStore implements storage.Store
var _ storage.Store = (*KVStore)(nil)

func (s *KVStore) Get(key string) (string, error) {
	ctx, cancel := withTimeout()
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(key, value string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
