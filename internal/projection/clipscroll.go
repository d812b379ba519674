package projection

import "github.com/dshills/projterm/internal/terminal"

// ClipScrollMeta links a clipped terminal to the unclipped one it shows.
type ClipScrollMeta struct {
	Inner         terminal.Terminal
	Width, Height int
	DX, DY        int
}

// Kind implements terminal.Meta.
func (ClipScrollMeta) Kind() terminal.Kind { return terminal.KindClipScroll }

// ScrollOffset returns the translation that brings the visible cursor of t
// into a width x height viewport. It only ever scrolls left or up, and only
// as far as needed to put the cursor on the last column or row. A terminal
// without cursors is not scrolled.
func ScrollOffset(t terminal.Terminal, width, height int) (dx, dy int) {
	cur, ok := t.VisibleCursor()
	if !ok {
		return 0, 0
	}
	return min(0, width-cur.X-1), min(0, height-cur.Y-1)
}

// ClipScroll scrolls t so its visible cursor is inside the viewport, then
// clips it to width x height.
func ClipScroll(t terminal.Terminal, width, height int) terminal.Terminal {
	dx, dy := ScrollOffset(t, width, height)
	return t.Translate(dx, dy).
		Clip(width, height).
		WithMeta(ClipScrollMeta{Inner: t, Width: width, Height: height, DX: dx, DY: dy})
}
