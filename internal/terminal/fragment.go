package terminal

import (
	"fmt"
	"strings"
)

// EscapedNewline is drawn in place of a line break inside a fragment.
const EscapedNewline = `\n`

// Cursor is a render-time marker at a cell position.
type Cursor struct {
	X, Y int
}

// Move returns the cursor shifted by (dx, dy).
func (c Cursor) Move(dx, dy int) Cursor {
	return Cursor{X: c.X + dx, Y: c.Y + dy}
}

// TextFragment is a positioned run of identically styled text.
type TextFragment struct {
	X, Y int
	Text string
	Bold bool
	Bg   Color
	Fg   Color
}

// NewFragment creates an unstyled fragment.
func NewFragment(x, y int, text string) TextFragment {
	return TextFragment{X: x, Y: y, Text: text}
}

// Move returns the fragment shifted by (dx, dy).
func (f TextFragment) Move(dx, dy int) TextFragment {
	f.X += dx
	f.Y += dy
	return f
}

// Width returns the number of cells the fragment covers.
func (f TextFragment) Width() int {
	return len([]rune(f.Text))
}

// Clip trims the fragment to the columns [0, width).
// A fragment starting left of 0 keeps its right part; one overhanging width
// is truncated. The result may have empty text.
func (f TextFragment) Clip(width int) TextFragment {
	runes := []rune(f.Text)
	var start, end int
	if f.X < 0 {
		start = -f.X
		end = start + width
		f.X = 0
	} else {
		start = 0
		end = width - f.X
	}
	start = min(max(start, 0), len(runes))
	end = min(max(end, 0), len(runes))
	if start >= end {
		f.Text = ""
		return f
	}
	f.Text = string(runes[start:end])
	return f
}

// Split breaks the fragment at every occurrence of sep. Each separator is
// replaced by a fragment holding replacement, restyled with opts. Empty
// pieces are dropped and x positions advance by the text actually emitted.
func (f TextFragment) Split(sep, replacement string, opts ...StyleOption) []TextFragment {
	var b Builder
	nextX := f.X
	for i, part := range strings.Split(f.Text, sep) {
		if i > 0 {
			r := f
			r.X = nextX
			r.Text = replacement
			nextX += b.Add(r.restyle(opts))
		}
		p := f
		p.X = nextX
		p.Text = part
		nextX += b.Add(p)
	}
	return b.Fragments()
}

// ReplaceNewlines splits the fragment at line breaks, drawing each break as
// the two-cell glyph \n styled with opts.
func (f TextFragment) ReplaceNewlines(opts ...StyleOption) []TextFragment {
	return f.Split("\n", EscapedNewline, opts...)
}

func (f TextFragment) restyle(opts []StyleOption) TextFragment {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f TextFragment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TextFragment(x=%d, y=%d, text=%q", f.X, f.Y, f.Text)
	if f.Bold {
		b.WriteString(", bold")
	}
	if !f.Bg.IsNone() {
		fmt.Fprintf(&b, ", bg=%s", f.Bg)
	}
	if !f.Fg.IsNone() {
		fmt.Fprintf(&b, ", fg=%s", f.Fg)
	}
	b.WriteString(")")
	return b.String()
}

// StyleOption overrides one styling field of a fragment.
type StyleOption func(*TextFragment)

// WithBg sets the background color.
func WithBg(c Color) StyleOption {
	return func(f *TextFragment) { f.Bg = c }
}

// WithFg sets the foreground color.
func WithFg(c Color) StyleOption {
	return func(f *TextFragment) { f.Fg = c }
}

// WithBold sets the bold flag.
func WithBold(bold bool) StyleOption {
	return func(f *TextFragment) { f.Bold = bold }
}

// Builder collects fragments, dropping the empty ones.
type Builder struct {
	fragments []TextFragment
}

// Add appends f if it has text and returns its width.
func (b *Builder) Add(f TextFragment) int {
	if f.Text == "" {
		return 0
	}
	b.fragments = append(b.fragments, f)
	return f.Width()
}

// Extend adds every fragment and returns the total width added.
func (b *Builder) Extend(fragments []TextFragment) int {
	total := 0
	for _, f := range fragments {
		total += b.Add(f)
	}
	return total
}

// Fragments returns the collected fragments.
func (b *Builder) Fragments() []TextFragment {
	return b.fragments
}
