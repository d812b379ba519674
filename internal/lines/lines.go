// Package lines splits a document into logical lines and maps absolute
// selection offsets to row/column positions.
package lines

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/projterm/internal/document"
)

// Separator is the line break recognised when splitting.
const Separator = "\n"

// LineRecord is one logical line with its 1-based number.
type LineRecord struct {
	Text   string
	Number int
}

// Len returns the line length in runes.
func (l LineRecord) Len() int {
	return len([]rune(l.Text))
}

// Position is a row/column location. Both are 0-based.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Selection is a range expressed in row/column positions. Start <= End.
type Selection struct {
	Start Position
	End   Position
}

// Lines is a document split into lines with row/column selections.
type Lines struct {
	lines      []LineRecord
	selections []Selection
}

// New creates a Lines value directly. It is mostly useful in tests.
func New(records []LineRecord, selections ...Selection) Lines {
	return Lines{lines: slices.Clone(records), selections: slices.Clone(selections)}
}

// FromString splits doc on line breaks and converts its selections.
func FromString(doc document.String) Lines {
	texts := strings.Split(doc.Text(), Separator)
	records := make([]LineRecord, len(texts))
	for i, text := range texts {
		records[i] = LineRecord{Text: text, Number: i + 1}
	}

	l := Lines{lines: records}
	sels := doc.Selections()
	l.selections = make([]Selection, len(sels))
	for i, sel := range sels {
		l.selections[i] = Selection{
			Start: l.PositionOf(sel.PosStart()),
			End:   l.PositionOf(sel.PosEnd()),
		}
	}
	return l
}

// Lines returns a copy of the line records.
func (l Lines) Lines() []LineRecord {
	return slices.Clone(l.lines)
}

// Selections returns a copy of the row/column selections.
func (l Lines) Selections() []Selection {
	return slices.Clone(l.selections)
}

// Count returns the number of lines.
func (l Lines) Count() int {
	return len(l.lines)
}

// NumberWidth returns the width of the widest line number.
func (l Lines) NumberWidth() int {
	width := 1
	for _, line := range l.lines {
		width = max(width, len(fmt.Sprint(line.Number)))
	}
	return width
}

// lineStart returns the absolute offset of the first rune of row.
func (l Lines) lineStart(row int) int {
	offset := 0
	for i := 0; i < row && i < len(l.lines); i++ {
		offset += l.lines[i].Len() + len(Separator)
	}
	return offset
}

// PositionOf maps an absolute offset to a row/column position.
// A line owns the half-open range [start, start+len] including its end, so a
// caret right before a break stays on that line. Offsets outside the text
// are clamped to its first or last position.
func (l Lines) PositionOf(offset int) Position {
	if len(l.lines) == 0 || offset <= 0 {
		return Position{}
	}
	start := 0
	for row, line := range l.lines {
		end := start + line.Len()
		if offset <= end {
			return Position{Row: row, Col: offset - start}
		}
		start = end + len(Separator)
	}
	last := len(l.lines) - 1
	return Position{Row: last, Col: l.lines[last].Len()}
}

// Offset maps a row/column position back to an absolute offset.
func (l Lines) Offset(pos Position) int {
	return l.lineStart(pos.Row) + pos.Col
}

// ToString rebuilds a document from the lines.
// Selections come back forward, covering the same absolute range.
func (l Lines) ToString() document.String {
	texts := make([]string, len(l.lines))
	for i, line := range l.lines {
		texts[i] = line.Text
	}
	sels := make([]document.Selection, len(l.selections))
	for i, sel := range l.selections {
		start := l.Offset(sel.Start)
		sels[i] = document.NewSelection(start, l.Offset(sel.End)-start)
	}
	return document.New(strings.Join(texts, Separator), sels...)
}

// RowSelections returns the selections that touch row, as line-local
// document selections in selection order. A selection spanning several rows
// contributes the part that falls on row.
func (l Lines) RowSelections(row int) []document.Selection {
	if row < 0 || row >= len(l.lines) {
		return nil
	}
	lineLen := l.lines[row].Len()

	var out []document.Selection
	for _, sel := range l.selections {
		if row < sel.Start.Row || row > sel.End.Row {
			continue
		}
		from, to := 0, lineLen
		if row == sel.Start.Row {
			from = sel.Start.Col
		}
		if row == sel.End.Row {
			to = sel.End.Col
		}
		out = append(out, document.NewSelection(from, to-from))
	}
	return out
}
