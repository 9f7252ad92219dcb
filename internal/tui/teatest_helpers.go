package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/remark/internal/app"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/database"
)

// SetupTestModel creates a sized model over an in-memory database with an
// in-memory author store
func SetupTestModel(t *testing.T) (Model, *app.App) {
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
	t.Cleanup(func() { _ = application.Close() })

	m := InitialModel(ctx, application, cfg)
	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, application
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// KeyPress builds a key message for a printable key
func KeyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)})
}

// SpecialKey builds a key message for a non-printable key
func SpecialKey(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code, Mod: mod})
}

// TypeText sends each rune of s as a key press
func TypeText(m Model, s string) Model {
	for _, r := range s {
		m = UpdateModelWithMessage(m, KeyPress(r))
	}
	return m
}

// Click sends a left mouse click at x, y
func Click(m Model, x, y int) Model {
	return UpdateModelWithMessage(m, tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft}))
}
