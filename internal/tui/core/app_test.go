package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/app"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/database"
)

func TestApp_DelegatesToModel(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default()
	cfg.Storage.AuthorStore = config.AuthorStoreMemory
	application, err := app.New(ctx, cfg, app.WithDB(db))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	a := New(ctx, application, cfg)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	a.Update(tea.KeyPressMsg(tea.Key{Code: 'n', Text: "n"}))

	require.NotNil(t, a.GetModel().Button().Form())
	assert.Contains(t, a.View().Content, "New Comment")

	a.Close()
	assert.Nil(t, a.GetModel().Button().Form())
}
