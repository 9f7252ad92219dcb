// Package layers provides utility functions for creating and managing UI layers
package layers

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell at x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// CenteredRect returns the region content occupies when centered on a
// screen of the given size. Content larger than the screen is pinned to the
// top left corner.
func CenteredRect(content string, screenWidth, screenHeight int) Rect {
	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	return Rect{
		X:      max(x, 0),
		Y:      max(y, 0),
		Width:  contentWidth,
		Height: contentHeight,
	}
}

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	r := CenteredRect(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(r.X).Y(r.Y)
}

// CreateScrimLayer creates a full-screen layer painted in color, used to dim
// whatever sits underneath a modal. It returns nil for an empty screen.
func CreateScrimLayer(color string, screenWidth, screenHeight int) *lipgloss.Layer {
	if screenWidth <= 0 || screenHeight <= 0 {
		return nil
	}

	row := strings.Repeat(" ", screenWidth)
	rows := make([]string, screenHeight)
	for i := range rows {
		rows[i] = row
	}

	scrim := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Render(strings.Join(rows, "\n"))

	return lipgloss.NewLayer(scrim).X(0).Y(0)
}

// OverlayWidth picks the content width for an overlay on a screen this wide
func OverlayWidth(screenWidth int) int {
	width := screenWidth * OverlayWidthNumerator / OverlayWidthDivisor
	width = min(max(width, OverlayMinWidth), OverlayMaxWidth)

	// never wider than the screen can show inside the container chrome
	chrome := 2 * (ContainerBorderWidth + ContainerPaddingWidth)
	if limit := screenWidth - chrome; limit > 0 {
		width = min(width, limit)
	}
	return width
}
