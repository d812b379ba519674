package projection

import (
	"slices"
	"strings"

	"github.com/dshills/projterm/internal/terminal"
)

// Orientation selects the axis a split stacks its panes along.
type Orientation uint8

const (
	// Rows stacks panes top to bottom, each spanning the full width.
	Rows Orientation = iota

	// Columns places panes left to right, each spanning the full height.
	Columns
)

// ParseOrientation maps a config name to an orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "", "rows":
		return Rows, true
	case "columns":
		return Columns, true
	default:
		return Rows, false
	}
}

func (o Orientation) String() string {
	if o == Columns {
		return "columns"
	}
	return "rows"
}

// LayoutFunc produces a terminal for the given viewport.
// Nested splits are LayoutFuncs that call SplitIntoRows or SplitIntoColumns.
type LayoutFunc func(width, height int) terminal.Terminal

// Pane is one participant of a split.
// A Proportion of 0 sizes the pane to its content; positive proportions
// share the remaining space.
type Pane struct {
	Proportion int
	Active     bool

	content terminal.Terminal
	layout  LayoutFunc
}

// NewPane creates a pane showing a prebuilt terminal.
func NewPane(t terminal.Terminal, proportion int, active bool) Pane {
	return Pane{Proportion: max(proportion, 0), Active: active, content: t}
}

// NewLayoutPane creates a pane whose content is produced at the size the
// split allots to it.
func NewLayoutPane(fn LayoutFunc, proportion int, active bool) Pane {
	return Pane{Proportion: max(proportion, 0), Active: active, layout: fn}
}

// Render returns the pane content for a viewport.
func (p Pane) Render(width, height int) terminal.Terminal {
	if p.layout != nil {
		return p.layout(width, height)
	}
	return p.content
}

// SplitMeta links a split terminal to its panes and what each rendered.
type SplitMeta struct {
	Orientation   Orientation
	Panes         []Pane
	Width, Height int

	// Sizes holds each pane's extent along the split axis.
	Sizes []int

	// Rendered holds each pane's clipped terminal before translation.
	Rendered []terminal.Terminal

	// Active is the index of the active pane, or -1.
	Active int
}

// Kind implements terminal.Meta.
func (SplitMeta) Kind() terminal.Kind { return terminal.KindSplit }

// ActivePane returns the rendered terminal of the active pane.
func (m SplitMeta) ActivePane() (terminal.Terminal, bool) {
	if m.Active < 0 || m.Active >= len(m.Rendered) {
		return terminal.Terminal{}, false
	}
	return m.Rendered[m.Active], true
}

// axis abstracts the direction a split runs in.
type axis struct {
	total  func(width, height int) int
	extent func(t terminal.Terminal) int
	child  func(width, height, size int) (int, int)
	offset func(pos int) (dx, dy int)
}

var rowsAxis = axis{
	total:  func(_, height int) int { return height },
	extent: terminal.Terminal.Height,
	child:  func(width, _, size int) (int, int) { return width, size },
	offset: func(pos int) (int, int) { return 0, pos },
}

var columnsAxis = axis{
	total:  func(width, _ int) int { return width },
	extent: terminal.Terminal.Width,
	child:  func(_, height, size int) (int, int) { return size, height },
	offset: func(pos int) (int, int) { return pos, 0 },
}

// SplitIntoRows stacks panes vertically in a width x height viewport.
func SplitIntoRows(panes []Pane, width, height int) terminal.Terminal {
	return Split(Rows, panes, width, height)
}

// SplitIntoColumns places panes side by side in a width x height viewport.
func SplitIntoColumns(panes []Pane, width, height int) terminal.Terminal {
	return Split(Columns, panes, width, height)
}

// Split arranges panes along orientation.
//
// Fixed panes take their content's extent. Flexible panes share what is
// left in proportion to their weight, rounded down; the remainder is left
// empty. Sizes are clamped so the panes never exceed the viewport. Each
// pane is rendered at its size, clip-scrolled, and moved to its offset.
// Only the first active pane contributes cursors.
func Split(orientation Orientation, panes []Pane, width, height int) terminal.Terminal {
	ax := rowsAxis
	if orientation == Columns {
		ax = columnsAxis
	}
	total := max(ax.total(width, height), 0)

	sizes := make([]int, len(panes))
	reserved, weights := 0, 0
	for i, p := range panes {
		if p.Proportion == 0 {
			sizes[i] = ax.extent(p.Render(width, height))
			reserved += sizes[i]
		} else {
			weights += p.Proportion
		}
	}
	available := max(total-reserved, 0)

	meta := SplitMeta{
		Orientation: orientation,
		Panes:       slices.Clone(panes),
		Width:       width,
		Height:      height,
		Sizes:       sizes,
		Rendered:    make([]terminal.Terminal, len(panes)),
		Active:      -1,
	}

	var b terminal.Builder
	var cursors []terminal.Cursor
	pos := 0
	for i, p := range panes {
		if p.Proportion > 0 {
			sizes[i] = 0
			if weights > 0 {
				sizes[i] = available * p.Proportion / weights
			}
		}
		sizes[i] = min(sizes[i], total-pos)

		cw, ch := ax.child(width, height, sizes[i])
		rendered := ClipScroll(p.Render(cw, ch), cw, ch)
		meta.Rendered[i] = rendered

		dx, dy := ax.offset(pos)
		placed := rendered.Translate(dx, dy)
		b.Extend(placed.Fragments())
		if p.Active && meta.Active < 0 {
			meta.Active = i
			cursors = placed.Cursors()
		}
		pos += sizes[i]
	}
	return terminal.New(b.Fragments(), cursors).WithMeta(meta)
}
