// Package backend provides the drawing surfaces the renderer paints on and
// converts their input into engine events.
package backend

import (
	"sync"
	"unicode"

	"github.com/dshills/projterm/internal/input"
	"github.com/dshills/projterm/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Data is the payload of an interrupt posted with PostInterrupt.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor understands.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyCtrl     // Control chord (Rune holds the lower case letter)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend is a surface of character cells.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the surface are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the surface.
	GetCell(x, y int) core.Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	// It returns an EventNone event once the backend is shut down.
	PollEvent() Event

	// PostInterrupt wakes PollEvent with an EventInterrupt carrying data.
	PostInterrupt(data any)
}

// ToInput converts a backend event into an engine event.
// It reports false for events the engine does not consume.
func ToInput(ev Event) (input.Event, bool) {
	switch ev.Type {
	case EventResize:
		return input.NewSizeEvent(ev.Width, ev.Height), true
	case EventKey:
		r, ok := keyRune(ev)
		if !ok {
			return nil, false
		}
		return input.NewKeyboardEvent(r), true
	default:
		return nil, false
	}
}

// keyRune maps a key event to the code point the editor expects: printable
// runes as typed, control chords as ASCII control codes. Forward delete has
// no engine operation and is dropped, since U+007F would be inserted as text.
func keyRune(ev Event) (rune, bool) {
	switch ev.Key {
	case KeyRune:
		if ev.Mod.Has(ModCtrl) && ev.Rune < unicode.MaxASCII && unicode.IsLetter(ev.Rune) {
			return unicode.ToLower(ev.Rune) - 'a' + 1, true
		}
		return ev.Rune, true
	case KeyCtrl:
		return unicode.ToLower(ev.Rune) - 'a' + 1, true
	case KeyEscape:
		return 0x1b, true
	case KeyEnter:
		return '\r', true
	case KeyTab:
		return '\t', true
	case KeyBackspace:
		return input.Backspace, true
	case KeyLeft:
		return input.CtrlB, true
	case KeyRight:
		return input.CtrlF, true
	default:
		return 0, false
	}
}

// NullBackend is an in-memory backend for testing. It is safe for
// concurrent use, so tests can inspect it while a loop draws on it.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	events        chan Event
	done          chan struct{}
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		done:   make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.allocate()
	return nil
}

// allocate sizes the cell grid. Callers hold b.mu.
func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

// Shutdown unblocks PollEvent. It is safe to call more than once.
func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y >= 0 && y < len(b.cells) && x >= 0 && x < len(b.cells[y]) {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y >= 0 && y < len(b.cells) && x >= 0 && x < len(b.cells[y]) {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{Type: EventNone}
	}
}

// PostEvent queues an event for PollEvent. Events are dropped when the
// queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) PostInterrupt(data any) {
	b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

// Row returns the runes of row y as a string, for testing.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= len(b.cells) {
		return ""
	}
	runes := make([]rune, len(b.cells[y]))
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Resize simulates a terminal resize: the surface is reallocated and an
// EventResize is queued.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.allocate()
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
