// Package renderer paints terminal snapshots onto a backend.
//
// The engine only names colors symbolically (BACKGROUND, YELLOW, ...).
// A Theme resolves those names to RGB values once, at startup or on config
// reload, and the Renderer uses it to turn every fragment into styled cells.
//
// Layers:
//
//	┌─────────────────────────────────────────┐
//	│   Renderer + Theme                      │
//	├─────────────────────────────────────────┤
//	│   backend.Backend                       │
//	├─────────────────────────────────────────┤
//	│   Terminal (tcell) │ NullBackend        │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultTheme())
//	r.Render(term)
package renderer
