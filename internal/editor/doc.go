// Package editor composes the full screen: a status bar, an optional filter
// popup and a split view of the document.
//
// State is an immutable value. Project turns it into a terminal whose meta
// remembers the state and the split it was built from, so the next event can
// be routed from the terminal alone:
//
//	term := editor.Project(state)
//	next, ok := editor.KeyboardEvent(term, input.NewKeyboardEvent('x'))
//
// Ctrl-G toggles the filter popup. While it is open keystrokes edit the
// popup and the document is left untouched.
//
// Driver keeps the current terminal between events for callers that want a
// stateful handle.
package editor
