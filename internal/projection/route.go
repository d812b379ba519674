package projection

import (
	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/input"
	"github.com/dshills/projterm/internal/terminal"
)

// Source returns the document t was projected from. Splits are followed
// through their active pane.
func Source(t terminal.Terminal) (document.String, bool) {
	switch m := t.Meta().(type) {
	case StringMeta:
		return m.Source, true
	case LinesMeta:
		return m.Source, true
	case ClipScrollMeta:
		return Source(m.Inner)
	case SplitMeta:
		active, ok := m.ActivePane()
		if !ok {
			return document.String{}, false
		}
		return Source(active)
	default:
		return document.String{}, false
	}
}

// KeyboardEvent applies ev to the document behind t and re-projects it
// with the same parameters. A split forwards the event to its active pane
// and is laid out again at its size. Terminals with no known source are
// returned unchanged.
func KeyboardEvent(t terminal.Terminal, ev input.KeyboardEvent) terminal.Terminal {
	switch m := t.Meta().(type) {
	case StringMeta:
		return StringToTerminal(m.Source.KeyboardEvent(ev), m.X, m.Y)
	case LinesMeta:
		return LinesToTerminal(m.Source.KeyboardEvent(ev), WithLineNumbers(m.Mode))
	case ClipScrollMeta:
		return ClipScroll(KeyboardEvent(m.Inner, ev), m.Width, m.Height)
	case SplitMeta:
		active, ok := m.ActivePane()
		if !ok {
			return t
		}
		if cs, ok := active.Meta().(ClipScrollMeta); ok {
			active = cs.Inner
		}
		next := KeyboardEvent(active, ev)
		panes := append([]Pane(nil), m.Panes...)
		panes[m.Active] = NewLayoutPane(func(width, height int) terminal.Terminal {
			return SizeEvent(next, width, height)
		}, panes[m.Active].Proportion, true)
		return Split(m.Orientation, panes, m.Width, m.Height)
	default:
		return t
	}
}

// SizeEvent re-projects t for a width x height viewport. Documents keep
// their layout; clip-scrolls and splits are recomputed for the new size.
func SizeEvent(t terminal.Terminal, width, height int) terminal.Terminal {
	switch m := t.Meta().(type) {
	case ClipScrollMeta:
		return ClipScroll(SizeEvent(m.Inner, width, height), width, height)
	case SplitMeta:
		return Split(m.Orientation, m.Panes, width, height)
	default:
		return t
	}
}
