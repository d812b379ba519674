package editor

import (
	"github.com/dshills/projterm/internal/input"
	"github.com/dshills/projterm/internal/terminal"
)

// ProjectFunc turns a state into a terminal. Project is the default.
type ProjectFunc func(State) terminal.Terminal

// Driver holds the current editor terminal and advances it one event at a
// time. It is not safe for concurrent use.
type Driver struct {
	project ProjectFunc
	term    terminal.Terminal
}

// NewDriver projects the initial state.
func NewDriver(s State, project ProjectFunc) *Driver {
	if project == nil {
		project = Project
	}
	return &Driver{project: project, term: project(s)}
}

// Terminal returns the current terminal.
func (d *Driver) Terminal() terminal.Terminal {
	return d.term
}

// State returns the state behind the current terminal.
func (d *Driver) State() State {
	m, _ := d.term.Meta().(Meta)
	return m.State
}

// KeyboardEvent applies ev and returns the new terminal.
func (d *Driver) KeyboardEvent(ev input.KeyboardEvent) terminal.Terminal {
	if s, ok := KeyboardEvent(d.term, ev); ok {
		d.term = d.project(s)
	}
	return d.term
}

// SizeEvent applies ev and returns the new terminal.
func (d *Driver) SizeEvent(ev input.SizeEvent) terminal.Terminal {
	if s, ok := SizeEvent(d.term, ev); ok {
		d.term = d.project(s)
	}
	return d.term
}

// MeasurementEvent applies ev and returns the new terminal.
func (d *Driver) MeasurementEvent(ev input.MeasurementEvent) terminal.Terminal {
	if s, ok := MeasurementEvent(d.term, ev); ok {
		d.term = d.project(s)
	}
	return d.term
}

// Dispatch applies any supported event.
func (d *Driver) Dispatch(ev input.Event) terminal.Terminal {
	switch e := ev.(type) {
	case input.KeyboardEvent:
		return d.KeyboardEvent(e)
	case input.SizeEvent:
		return d.SizeEvent(e)
	case input.MeasurementEvent:
		return d.MeasurementEvent(e)
	default:
		return d.term
	}
}

// SetLayout replaces the layout, typically after a config reload.
func (d *Driver) SetLayout(l Layout) terminal.Terminal {
	s := d.State()
	s.Layout = l
	d.term = d.project(s)
	return d.term
}
