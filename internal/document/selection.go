package document

import "fmt"

// Selection is a range of text anchored at Start and extending Length runes.
// Length may be negative, meaning the selection extends backward.
type Selection struct {
	Start  int
	Length int
}

// NewSelection creates a selection.
func NewSelection(start, length int) Selection {
	return Selection{Start: start, Length: length}
}

// NewCaret creates a zero-length selection at offset.
func NewCaret(offset int) Selection {
	return Selection{Start: offset}
}

// PosStart returns the lower bound of the selection.
func (s Selection) PosStart() int {
	if s.Length < 0 {
		return s.Start + s.Length
	}
	return s.Start
}

// PosEnd returns the upper bound of the selection.
func (s Selection) PosEnd() int {
	if s.Length > 0 {
		return s.Start + s.Length
	}
	return s.Start
}

// AbsLength returns the number of selected runes.
func (s Selection) AbsLength() int {
	if s.Length < 0 {
		return -s.Length
	}
	return s.Length
}

// IsCaret reports whether the selection is zero-length.
func (s Selection) IsCaret() bool {
	return s.Length == 0
}

// MoveCursorBack returns a caret steps runes before Start.
func (s Selection) MoveCursorBack(steps int) Selection {
	return Selection{Start: s.Start - steps}
}

// MoveCursorForward returns a caret steps runes after Start.
func (s Selection) MoveCursorForward(steps int) Selection {
	return Selection{Start: s.Start + steps}
}

// MoveForward shifts the selection by steps, keeping its length.
func (s Selection) MoveForward(steps int) Selection {
	return Selection{Start: s.Start + steps, Length: s.Length}
}

func (s Selection) String() string {
	return fmt.Sprintf("Selection(start=%d, length=%d)", s.Start, s.Length)
}
