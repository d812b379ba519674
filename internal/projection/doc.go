// Package projection turns documents into terminals and arranges terminals
// into layouts.
//
// Every projection is a pure function from an immutable value to a
// terminal.Terminal. The Terminal remembers its source through a Meta value
// so that input events can be routed back:
//
//	StringMeta      a document projected onto one row
//	LinesMeta       a document projected line by line with a gutter
//	ClipScrollMeta  a terminal scrolled and clipped to a viewport
//	SplitMeta       panes arranged in rows or columns
//
// KeyboardEvent and SizeEvent walk this chain. Source finds the document a
// terminal was projected from, so a caller can edit it and re-project the
// whole tree from scratch. There is no incremental update: every event
// re-derives every terminal.
//
// Layout:
//
//	split := projection.SplitIntoRows([]projection.Pane{
//		projection.NewLayoutPane(lines, 3, true),
//		projection.NewPane(separator, 0, false),
//		projection.NewLayoutPane(raw, 1, false),
//	}, width, height)
//
// Panes with proportion 0 take their intrinsic size; the others share what
// is left, weighted by proportion and rounded down.
package projection
