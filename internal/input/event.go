package input

import (
	"fmt"
	"strconv"
)

// Control codes recognised by the editing layer.
const (
	CtrlB     rune = 0x02 // move caret back
	CtrlC     rune = 0x03
	CtrlF     rune = 0x06 // move caret forward
	CtrlG     rune = 0x07 // toggle the filter popup
	Backspace rune = 0x08
	CtrlN     rune = 0x0e // select next word
	CtrlQ     rune = 0x11
)

// Event is implemented by every event kind.
// Describe returns the short text shown in the status bar.
type Event interface {
	Describe() string
}

// KeyboardEvent is a single typed code point.
type KeyboardEvent struct {
	Char rune
}

// NewKeyboardEvent creates a keyboard event for r.
func NewKeyboardEvent(r rune) KeyboardEvent {
	return KeyboardEvent{Char: r}
}

// IsPrintable reports whether the character should be inserted as text:
// every code point at or above space, DEL included.
func (e KeyboardEvent) IsPrintable() bool {
	return e.Char >= 32
}

// Describe implements Event.
func (e KeyboardEvent) Describe() string {
	return "KeyboardEvent(" + strconv.QuoteRune(e.Char) + ")"
}

// SizeEvent reports the surface size in character cells.
type SizeEvent struct {
	Width  int
	Height int
}

// NewSizeEvent creates a size event.
func NewSizeEvent(width, height int) SizeEvent {
	return SizeEvent{Width: width, Height: height}
}

// Resize returns a copy with height adjusted by dh.
// Negative results are clamped to zero.
func (e SizeEvent) Resize(dh int) SizeEvent {
	e.Height = max(0, e.Height+dh)
	return e
}

// Describe implements Event.
func (e SizeEvent) Describe() string {
	return fmt.Sprintf("SizeEvent(%dx%d)", e.Width, e.Height)
}

// MeasurementEvent reports how long the last projection and repaint took.
type MeasurementEvent struct {
	ProjectMs int64
	RepaintMs int64
}

// Describe implements Event.
func (e MeasurementEvent) Describe() string {
	return fmt.Sprintf("MeasurementEvent(%dms, %dms)", e.ProjectMs, e.RepaintMs)
}

// Describe returns the status text for ev, or "none" when ev is nil.
func Describe(ev Event) string {
	if ev == nil {
		return "none"
	}
	return ev.Describe()
}
