package document

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dshills/projterm/internal/input"
)

// NextWordWidth is the fixed advance used by SelectNextWord.
// It is a heuristic, not a tokenizer.
const NextWordWidth = 5

// String is the editable document: text plus ordered selections.
type String struct {
	text       string
	selections []Selection
}

// New creates a document. With no selections a caret at 0 is used.
func New(text string, selections ...Selection) String {
	if len(selections) == 0 {
		selections = []Selection{NewCaret(0)}
	}
	return String{text: text, selections: slices.Clone(selections)}
}

// FromString creates a document with a single caret at offset.
func FromString(text string, offset int) String {
	return New(text, NewCaret(offset))
}

// FromFile reads path into a document with a caret at the start.
func FromFile(path string) (String, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return String{}, fmt.Errorf("loading document %s: %w", path, err)
	}
	return FromString(string(data), 0), nil
}

// Text returns the document text.
func (s String) Text() string {
	return s.text
}

// Len returns the text length in runes.
func (s String) Len() int {
	return len([]rune(s.text))
}

// Selections returns a copy of the selections in order.
func (s String) Selections() []Selection {
	return slices.Clone(s.selections)
}

// LastSelection returns the most recent selection.
// An empty document value reports a caret at 0.
func (s String) LastSelection() Selection {
	if len(s.selections) == 0 {
		return NewCaret(0)
	}
	return s.selections[len(s.selections)-1]
}

// WithSelections returns a copy with the given selections.
func (s String) WithSelections(selections ...Selection) String {
	return String{text: s.text, selections: slices.Clone(selections)}
}

// Equal reports whether two documents have the same text and selections.
func (s String) Equal(other String) bool {
	return s.text == other.text && slices.Equal(s.selections, other.selections)
}

// KeyboardEvent applies a keyboard event.
// Unrecognised control input returns the receiver unchanged.
func (s String) KeyboardEvent(ev input.KeyboardEvent) String {
	switch ev.Char {
	case input.CtrlF:
		return s.MoveCursorForward()
	case input.CtrlB:
		return s.MoveCursorBack()
	case input.CtrlN:
		return s.SelectNextWord()
	case input.Backspace:
		return s.DeleteBack()
	}
	if ev.IsPrintable() {
		return s.Replace(string(ev.Char))
	}
	return s
}

// Replace substitutes text for every selection, left to right.
// Each selection becomes a caret right after its inserted text.
func (s String) Replace(text string) String {
	runes := []rune(s.text)
	inserted := len([]rune(text))

	var b strings.Builder
	written := 0
	lastPos := 0
	selections := make([]Selection, 0, len(s.selections))
	for _, sel := range s.selections {
		gap := slice(runes, lastPos, sel.PosStart())
		b.WriteString(string(gap))
		b.WriteString(text)
		written += len(gap) + inserted
		lastPos = sel.PosEnd()
		selections = append(selections, NewCaret(written))
	}
	b.WriteString(string(slice(runes, lastPos, len(runes))))

	return String{text: b.String(), selections: selections}
}

// MoveCursorForward collapses to a caret one rune after the last selection's start.
func (s String) MoveCursorForward() String {
	return s.WithSelections(s.LastSelection().MoveCursorForward(1))
}

// MoveCursorBack collapses to a caret one rune before the last selection's start.
func (s String) MoveCursorBack() String {
	return s.WithSelections(s.LastSelection().MoveCursorBack(1))
}

// SelectNextWord extends the selection set.
// With a non-empty last selection, a copy shifted past it is appended.
// Otherwise the caret is replaced by a backward selection of NextWordWidth runes
// ending NextWordWidth runes ahead.
func (s String) SelectNextWord() String {
	last := s.LastSelection()
	if last.AbsLength() > 0 {
		selections := append(slices.Clone(s.selections), last.MoveForward(last.AbsLength()))
		return String{text: s.text, selections: selections}
	}
	return s.WithSelections(NewSelection(last.Start+NextWordWidth, -NextWordWidth))
}

// DeleteBack deletes the last selection, or the rune before a caret.
// A caret at offset 0 leaves the document unchanged.
func (s String) DeleteBack() String {
	last := s.LastSelection()
	if last.IsCaret() {
		if last.Start <= 0 {
			return s
		}
		last = NewSelection(last.Start, -1)
	}
	return s.WithSelections(last).Replace("")
}

func (s String) String() string {
	parts := make([]string, len(s.selections))
	for i, sel := range s.selections {
		parts[i] = sel.String()
	}
	return fmt.Sprintf("String(%q, [%s])", s.text, strings.Join(parts, ", "))
}

// slice returns runes[from:to] with both bounds clamped to the text.
// Inverted bounds yield an empty slice.
func slice(runes []rune, from, to int) []rune {
	from = min(max(from, 0), len(runes))
	to = min(max(to, 0), len(runes))
	if from >= to {
		return nil
	}
	return runes[from:to]
}

// Slice returns the text between two rune offsets, clamped to the document.
func (s String) Slice(from, to int) string {
	return string(slice([]rune(s.text), from, to))
}
