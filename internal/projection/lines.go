package projection

import (
	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/lines"
	"github.com/dshills/projterm/internal/terminal"
)

// LinesMeta links a terminal to the document it shows line by line.
type LinesMeta struct {
	Source document.String
	Lines  lines.Lines
	Mode   LineNumberMode
}

// Kind implements terminal.Meta.
func (LinesMeta) Kind() terminal.Kind { return terminal.KindLines }

// GutterWidth returns the number of columns taken by the line numbers and
// the space that follows them.
func (m LinesMeta) GutterWidth() int {
	return m.Lines.NumberWidth() + 1
}

// LinesOption configures LinesToTerminal.
type LinesOption func(*LinesMeta)

// WithLineNumbers selects how gutter numbers are computed.
func WithLineNumbers(mode LineNumberMode) LinesOption {
	return func(m *LinesMeta) { m.Mode = mode }
}

// LinesToTerminal projects doc one logical line per row.
//
// Row i shows line i: a yellow gutter label right-aligned to the widest line
// number, then the line text projected by StringToTerminal at column
// width+1 with the selections falling on that row.
func LinesToTerminal(doc document.String, opts ...LinesOption) terminal.Terminal {
	meta := LinesMeta{Source: doc, Lines: lines.FromString(doc)}
	for _, opt := range opts {
		opt(&meta)
	}

	numbers := lineNumberFormatter{
		mode:        meta.Mode,
		width:       meta.Lines.NumberWidth(),
		currentLine: currentRow(meta.Lines),
	}
	gutter := meta.GutterWidth()

	var b terminal.Builder
	var cursors []terminal.Cursor
	for row, line := range meta.Lines.Lines() {
		label := terminal.TextFragment{X: 0, Y: row, Text: numbers.format(row), Fg: LineNumberFg}
		b.Add(label)

		local := document.New(line.Text).WithSelections(meta.Lines.RowSelections(row)...)
		projected := StringToTerminal(local, gutter, row)
		b.Extend(projected.Fragments())
		cursors = append(cursors, projected.Cursors()...)
	}
	return terminal.New(b.Fragments(), cursors).WithMeta(meta)
}

// currentRow is the row holding the end of the last selection.
func currentRow(l lines.Lines) int {
	sels := l.Selections()
	if len(sels) == 0 {
		return 0
	}
	return sels[len(sels)-1].End.Row
}
