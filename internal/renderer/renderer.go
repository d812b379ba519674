package renderer

import (
	"sync"

	"github.com/dshills/projterm/internal/renderer/backend"
	"github.com/dshills/projterm/internal/renderer/core"
	"github.com/dshills/projterm/internal/terminal"
)

// Renderer paints terminal snapshots onto a backend.
type Renderer struct {
	mu      sync.Mutex
	backend backend.Backend
	theme   Theme
}

// New creates a renderer for b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// Theme returns the current theme.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// SetTheme replaces the theme used by later renders.
func (r *Renderer) SetTheme(theme Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme
}

// Render draws t over the whole surface and flushes it.
//
// Fragments are drawn in order, so later ones win where they overlap.
// The visible cursor becomes the backend cursor; the others are drawn as
// highlighted cells.
func (r *Renderer) Render(t terminal.Terminal) {
	theme := r.Theme()
	width, height := r.backend.Size()

	blank := core.NewStyledCell(' ', theme.Base())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.backend.SetCell(x, y, blank)
		}
	}

	visible := t.Clip(width, height)
	for _, f := range visible.Fragments() {
		style := theme.Style(f)
		for i, ch := range []rune(f.Text) {
			r.backend.SetCell(f.X+i, f.Y, core.NewStyledCell(ch, style))
		}
	}

	screen := core.RectFromSize(width, height)
	inside := func(c terminal.Cursor) bool {
		return screen.Contains(c.X, c.Y)
	}
	cursors := t.Cursors()
	if len(cursors) > 1 {
		secondary := theme.SecondaryCursor()
		for _, c := range cursors[:len(cursors)-1] {
			if !inside(c) {
				continue
			}
			cell := r.backend.GetCell(c.X, c.Y)
			cell.Style = cell.Style.WithBackground(secondary)
			r.backend.SetCell(c.X, c.Y, cell)
		}
	}
	if last, ok := t.VisibleCursor(); ok && inside(last) {
		r.backend.ShowCursor(last.X, last.Y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}
