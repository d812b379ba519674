package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/input"
	"github.com/dshills/projterm/internal/projection"
	"github.com/dshills/projterm/internal/terminal"
)

// FilterLabel is drawn at the start of the filter bar.
const FilterLabel = "Filter:"

// Bar styles.
const (
	StatusBg = terminal.ColorMagenta
	StatusFg = terminal.ColorWhite
	FilterBg = terminal.ColorGreen
	FilterFg = terminal.ColorWhite
)

// State is everything needed to draw one screen.
type State struct {
	Document document.String

	// Popup is the filter input. It is only meaningful while Filtering.
	Popup     document.String
	Filtering bool

	Width, Height int

	// Event is the last keyboard or size event, shown in the status bar.
	Event       input.Event
	Measurement input.MeasurementEvent

	Layout Layout
}

// New creates a state for doc with the default layout.
func New(doc document.String, width, height int) State {
	return State{Document: doc, Width: width, Height: height, Layout: DefaultLayout()}
}

// StatusText returns the unpadded status bar text.
func (s State) StatusText() string {
	return fmt.Sprintf("%s %dms %dms", input.Describe(s.Event), s.Measurement.ProjectMs, s.Measurement.RepaintMs)
}

// barRows is the number of rows above the split.
func (s State) barRows() int {
	if s.Filtering {
		return 2
	}
	return 1
}

// Meta links an editor terminal to its state and the split below the bars.
type Meta struct {
	State State
	Split terminal.Terminal
}

// Kind implements terminal.Meta.
func (Meta) Kind() terminal.Kind { return terminal.KindEditor }

// Project draws s.
//
// Row 0 is the status bar. While filtering, row 1 is the filter bar with the
// popup text after the label, and the split below it shows no cursors.
func Project(s State) terminal.Terminal {
	size := input.NewSizeEvent(s.Width, s.Height).Resize(-s.barRows())
	split := s.Layout.Project(s.Document, !s.Filtering, size.Width, size.Height)

	status := terminal.TextFragment{Text: padRight(s.StatusText(), s.Width), Bg: StatusBg, Fg: StatusFg}
	term := terminal.New([]terminal.TextFragment{status}, nil)

	if s.Filtering {
		bar := terminal.TextFragment{Text: padRight(FilterLabel, s.Width), Bold: true, Bg: FilterBg, Fg: FilterFg}
		popup := projection.StringToTerminal(s.Popup, 0, 0).
			Style(terminal.WithBg(FilterBg), terminal.WithFg(FilterFg)).
			Translate(len(FilterLabel)+1, 0)
		filter := terminal.New([]terminal.TextFragment{bar}, nil).Merge(popup)

		term = term.Merge(filter.Translate(0, 1)).Merge(split.ClearCursors().Translate(0, 2))
	} else {
		term = term.Merge(split.Translate(0, 1))
	}
	return term.Clip(s.Width, s.Height).WithMeta(Meta{State: s, Split: split})
}

// KeyboardEvent computes the state that follows ev on the editor terminal t.
// It reports false when t was not produced by Project.
func KeyboardEvent(t terminal.Terminal, ev input.KeyboardEvent) (State, bool) {
	m, ok := t.Meta().(Meta)
	if !ok {
		return State{}, false
	}
	s := m.State
	s.Event = ev

	switch {
	case ev.Char == input.CtrlG:
		s.Filtering = !s.Filtering
		s.Popup = document.String{}
		if s.Filtering {
			s.Popup = document.FromString("", 0)
		}
	case s.Filtering:
		s.Popup = s.Popup.KeyboardEvent(ev)
	default:
		next := projection.KeyboardEvent(m.Split, ev)
		if doc, ok := projection.Source(next); ok {
			s.Document = doc
		}
	}
	return s, true
}

// SizeEvent computes the state for a new surface size.
func SizeEvent(t terminal.Terminal, ev input.SizeEvent) (State, bool) {
	m, ok := t.Meta().(Meta)
	if !ok {
		return State{}, false
	}
	s := m.State
	s.Width, s.Height = max(ev.Width, 0), max(ev.Height, 0)
	s.Event = ev
	return s, true
}

// MeasurementEvent records timings of the last projection and repaint.
// The status bar keeps showing the last keyboard or size event.
func MeasurementEvent(t terminal.Terminal, ev input.MeasurementEvent) (State, bool) {
	m, ok := t.Meta().(Meta)
	if !ok {
		return State{}, false
	}
	s := m.State
	s.Measurement = ev
	return s, true
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
