package projection

import (
	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/terminal"
)

// Styles used when projecting documents.
const (
	SelectionBg   = terminal.ColorYellow
	LineBreakFg   = terminal.ColorMagenta
	LineNumberFg  = terminal.ColorYellow
	SeparatorBg   = terminal.ColorForeground
	SeparatorFg   = terminal.ColorBackground
	SeparatorRune = '-'
)

// StringMeta links a terminal to the document it shows on one row.
type StringMeta struct {
	Source document.String
	X, Y   int
}

// Kind implements terminal.Meta.
func (StringMeta) Kind() terminal.Kind { return terminal.KindString }

// StringToTerminal projects doc onto row y starting at column x.
//
// Text between selections is unstyled, selected text has a yellow
// background, and a cursor is placed where each selection ends. Line breaks
// are drawn as an escaped \n glyph so the result stays on one row.
func StringToTerminal(doc document.String, x, y int) terminal.Terminal {
	meta := StringMeta{Source: doc, X: x, Y: y}

	var b terminal.Builder
	var cursors []terminal.Cursor
	lastPos := 0
	for _, sel := range doc.Selections() {
		gap := terminal.NewFragment(x, y, doc.Slice(lastPos, sel.PosStart()))
		x += b.Extend(gap.ReplaceNewlines(terminal.WithFg(LineBreakFg)))

		selected := terminal.TextFragment{X: x, Y: y, Text: doc.Slice(sel.PosStart(), sel.PosEnd()), Bg: SelectionBg}
		x += b.Extend(selected.ReplaceNewlines())

		cursors = append(cursors, terminal.Cursor{X: x, Y: y})
		lastPos = sel.PosEnd()
	}
	tail := terminal.NewFragment(x, y, doc.Slice(lastPos, doc.Len()))
	b.Extend(tail.ReplaceNewlines(terminal.WithFg(LineBreakFg)))

	return terminal.New(b.Fragments(), cursors).WithMeta(meta)
}
