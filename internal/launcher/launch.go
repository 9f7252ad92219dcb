// Package launcher runs the full-screen comment app.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/tui/components"
	"github.com/thenoetrevino/remark/internal/tui/core"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// Launch starts the TUI application over c. The caller still owns c.
func Launch(parent context.Context, c *cli.CLI) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	theme.Init(c.Config.ColorScheme)
	components.InitStyles()

	tuiApp := core.New(ctx, c.App, c.Config)
	defer tuiApp.Close()

	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
