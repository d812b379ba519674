// Package input defines the events that flow from the rendering surface into
// the projection engine.
//
// There are three event kinds:
//   - KeyboardEvent carries a single code point. Control keys arrive as their
//     ASCII control codes (Ctrl-F is 0x06, Backspace is 0x08, ...).
//   - SizeEvent carries the surface size in character cells.
//   - MeasurementEvent carries how long the previous projection and repaint
//     took, so the status bar can display it.
//
// Events are plain values. Every handler in the engine takes an event and a
// value and returns a new value; nothing here is stateful.
package input
