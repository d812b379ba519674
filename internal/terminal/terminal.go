package terminal

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies which projection produced a Terminal.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindLines
	KindClipScroll
	KindSplit
	KindEditor
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindLines:
		return "lines"
	case KindClipScroll:
		return "clipscroll"
	case KindSplit:
		return "split"
	case KindEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// Meta is the back-reference from a Terminal to the value it was projected
// from. Implementations live next to their projection.
type Meta interface {
	Kind() Kind
}

// Terminal is an immutable snapshot of fragments and cursors.
// The last cursor is the visible one.
type Terminal struct {
	fragments []TextFragment
	cursors   []Cursor
	meta      Meta
}

// New creates a Terminal with no meta. Empty fragments are dropped.
func New(fragments []TextFragment, cursors []Cursor) Terminal {
	var b Builder
	b.Extend(fragments)
	return Terminal{fragments: b.Fragments(), cursors: slices.Clone(cursors)}
}

// Fragments returns a copy of the fragments in draw order.
func (t Terminal) Fragments() []TextFragment {
	return slices.Clone(t.fragments)
}

// Cursors returns a copy of the cursors.
func (t Terminal) Cursors() []Cursor {
	return slices.Clone(t.cursors)
}

// VisibleCursor returns the last cursor, which scrolling follows.
func (t Terminal) VisibleCursor() (Cursor, bool) {
	if len(t.cursors) == 0 {
		return Cursor{}, false
	}
	return t.cursors[len(t.cursors)-1], true
}

// Meta returns the back-reference, or nil.
func (t Terminal) Meta() Meta {
	return t.meta
}

// Kind returns the meta kind, KindNone when there is no meta.
func (t Terminal) Kind() Kind {
	if t.meta == nil {
		return KindNone
	}
	return t.meta.Kind()
}

// WithMeta returns a copy carrying m.
func (t Terminal) WithMeta(m Meta) Terminal {
	t.meta = m
	return t
}

// Translate shifts every fragment and cursor by (dx, dy).
func (t Terminal) Translate(dx, dy int) Terminal {
	fragments := make([]TextFragment, len(t.fragments))
	for i, f := range t.fragments {
		fragments[i] = f.Move(dx, dy)
	}
	cursors := make([]Cursor, len(t.cursors))
	for i, c := range t.cursors {
		cursors[i] = c.Move(dx, dy)
	}
	return Terminal{fragments: fragments, cursors: cursors, meta: t.meta}
}

// Clip keeps what is visible in the rectangle (0,0)-(width,height).
// Rows outside [0, height) are dropped, fragments straddling the left or
// right edge are trimmed, and cursors outside the rectangle are dropped.
func (t Terminal) Clip(width, height int) Terminal {
	var b Builder
	for _, f := range t.fragments {
		if f.Y < 0 || f.Y >= height {
			continue
		}
		b.Add(f.Clip(width))
	}
	var cursors []Cursor
	for _, c := range t.cursors {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			cursors = append(cursors, c)
		}
	}
	return Terminal{fragments: b.Fragments(), cursors: cursors, meta: t.meta}
}

// Merge appends other's fragments and cursors after t's.
// The result has no meta.
func (t Terminal) Merge(other Terminal) Terminal {
	return Terminal{
		fragments: slices.Concat(t.fragments, other.fragments),
		cursors:   slices.Concat(t.cursors, other.cursors),
	}
}

// AddFragment returns a copy with f appended. Empty fragments are ignored.
func (t Terminal) AddFragment(f TextFragment) Terminal {
	if f.Text == "" {
		return t
	}
	t.fragments = append(slices.Clip(t.fragments), f)
	return t
}

// ClearCursors returns a copy without cursors.
func (t Terminal) ClearCursors() Terminal {
	t.cursors = nil
	return t
}

// Style returns a copy with every fragment restyled by opts.
func (t Terminal) Style(opts ...StyleOption) Terminal {
	fragments := make([]TextFragment, len(t.fragments))
	for i, f := range t.fragments {
		fragments[i] = f.restyle(opts)
	}
	t.fragments = fragments
	return t
}

// Width returns the number of columns the content spans, at least 1.
func (t Terminal) Width() int {
	width := 1
	for _, f := range t.fragments {
		width = max(width, f.X+f.Width())
	}
	for _, c := range t.cursors {
		width = max(width, c.X+1)
	}
	return width
}

// Height returns the number of rows the content spans, at least 1.
func (t Terminal) Height() int {
	height := 1
	for _, f := range t.fragments {
		height = max(height, f.Y+1)
	}
	for _, c := range t.cursors {
		height = max(height, c.Y+1)
	}
	return height
}

// String lists fragments then cursors, one per line.
func (t Terminal) String() string {
	var b strings.Builder
	for _, f := range t.fragments {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	for _, c := range t.cursors {
		fmt.Fprintf(&b, "Cursor(x=%d, y=%d)\n", c.X, c.Y)
	}
	return b.String()
}
