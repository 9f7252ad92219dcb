// Package overlay wraps a view in a modal box drawn over a dimmed screen.
package overlay

import (
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/tui/layers"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// CloseGlyph marks the close control in the container's top right corner
const CloseGlyph = "✕"

// Content is the view an overlay presents. It must already be rendered.
type Content interface {
	View() string
}

// Remover is content that has its own teardown and reports when it is gone
type Remover interface {
	Remove()
	OnRemove(fn func()) *events.Subscription
}

// BackgroundDismisser is content that decides what a backdrop click means.
// It reports whether the content is gone afterwards.
type BackgroundDismisser interface {
	DismissBackground() bool
}

// Sizer is content that can be told how wide to draw
type Sizer interface {
	SetWidth(w int)
}

// Overlay presents one Content until closed
type Overlay struct {
	content Content
	removal events.Releaser
	gone    bool // content removed itself
	closed  bool
	closeSg events.Signal[*Overlay]

	// geometry from the last Render, used for hit testing
	container layers.Rect
	closeBtn  layers.Rect
}

// New wraps content. When content is a Remover, the overlay closes as soon
// as the content removes itself.
func New(content Content) *Overlay {
	o := &Overlay{content: content}
	if r, ok := content.(Remover); ok {
		o.removal = r.OnRemove(func() {
			o.gone = true
			o.Close()
		})
	}
	return o
}

// Content returns the wrapped view, or nil once closed
func (o *Overlay) Content() Content {
	return o.content
}

// Closed reports whether the overlay has been closed
func (o *Overlay) Closed() bool {
	return o.closed
}

// OnClose registers fn to run once the overlay closes
func (o *Overlay) OnClose(fn func()) *events.Subscription {
	return o.closeSg.Subscribe(func(*Overlay) { fn() })
}

// Close tears down the content and removes the overlay. It is safe to call
// more than once.
func (o *Overlay) Close() {
	if o.closed {
		return
	}
	o.closed = true

	if o.removal != nil {
		o.removal.Release()
		o.removal = nil
	}
	if r, ok := o.content.(Remover); ok && !o.gone {
		r.Remove()
	}
	o.content = nil
	o.container = layers.Rect{}
	o.closeBtn = layers.Rect{}

	o.closeSg.Emit(o)
	o.closeSg.Reset()
}

// Render lays the overlay out on a screen of the given size and returns its
// layers, scrim first. A closed overlay renders no layers.
func (o *Overlay) Render(width, height int) []*lipgloss.Layer {
	if o.closed {
		return nil
	}

	innerWidth := layers.OverlayWidth(width)
	if s, ok := o.content.(Sizer); ok {
		s.SetWidth(innerWidth)
	}

	closeRow := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Right).
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(CloseGlyph)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, layers.ContainerPaddingWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, closeRow, o.content.View()))

	o.container = layers.CenteredRect(box, width, height)
	o.closeBtn = layers.Rect{
		X:      o.container.X + o.container.Width - layers.ContainerBorderWidth - layers.ContainerPaddingWidth - lipgloss.Width(CloseGlyph),
		Y:      o.container.Y + layers.ContainerBorderWidth,
		Width:  lipgloss.Width(CloseGlyph),
		Height: 1,
	}

	var out []*lipgloss.Layer
	if scrim := layers.CreateScrimLayer(theme.Scrim, width, height); scrim != nil {
		out = append(out, scrim)
	}
	out = append(out, lipgloss.NewLayer(box).X(o.container.X).Y(o.container.Y))
	return out
}

// View renders the overlay alone on a screen of the given size
func (o *Overlay) View(width, height int) string {
	l := o.Render(width, height)
	if len(l) == 0 {
		return ""
	}
	return lipgloss.NewCanvas(l...).Render()
}

// Bounds returns the container region from the last Render
func (o *Overlay) Bounds() layers.Rect {
	return o.container
}

// CloseBounds returns the close control region from the last Render
func (o *Overlay) CloseBounds() layers.Rect {
	return o.closeBtn
}

// Click routes a click at screen cell x, y. A click on the close control or
// outside the container is offered to the content first. Clicks inside the
// container are left to the content.
// It reports whether the overlay closed.
func (o *Overlay) Click(x, y int) bool {
	if o.closed {
		return true
	}

	if !o.closeBtn.Contains(x, y) && o.container.Contains(x, y) {
		return false
	}
	o.DismissBackground()
	return o.closed
}

// DismissBackground handles a backdrop click
func (o *Overlay) DismissBackground() {
	if o.closed {
		return
	}
	if d, ok := o.content.(BackgroundDismisser); ok {
		if !d.DismissBackground() {
			slog.Debug("background dismiss refused by content")
			return
		}
	}
	o.Close()
}
