// Package document provides the editable text value: a string plus an
// ordered list of selections.
//
// Selection Model:
//
// A Selection is a start offset and a signed length. A negative length
// extends backward from start. A zero length is a plain caret. Offsets count
// runes, and every rune occupies one cell when projected.
//
// Values are immutable. Every edit returns a new String and leaves the
// receiver untouched, so a String can be shared freely between projections.
//
// Offsets outside the text are tolerated: moving a caret past either end is
// not rejected. Such carets are carried unchanged and clamped only when the
// text is sliced for display or editing.
package document
