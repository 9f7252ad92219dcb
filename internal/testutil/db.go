// Package testutil builds throwaway application state for command tests.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/remark/internal/app"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/database"
)

// SetupTestCLI creates a CLI over an in-memory database with sequential ids
// and an in-memory author store
func SetupTestCLI(t *testing.T) *cli.CLI {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenMemory(ctx)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default()
	cfg.Storage.AuthorStore = config.AuthorStoreMemory
	cfg.IDs.Strategy = config.IDStrategySQLite

	application, err := app.New(ctx, cfg, app.WithDB(db))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	c := &cli.CLI{App: application, Config: cfg}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
