package editor

import (
	"strings"

	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/projection"
	"github.com/dshills/projterm/internal/terminal"
)

// Layout describes the panes below the status bar.
type Layout struct {
	Orientation     projection.Orientation
	LinesProportion int
	RawProportion   int
	ShowRaw         bool
	Separator       bool
	LineNumbers     projection.LineNumberMode
}

// DefaultLayout returns the lines view over a one-row raw view.
func DefaultLayout() Layout {
	return Layout{
		Orientation:     projection.Rows,
		LinesProportion: 3,
		RawProportion:   1,
		ShowRaw:         true,
		Separator:       true,
		LineNumbers:     projection.LineNumberAbsolute,
	}
}

// Panes builds the split participants for doc. The lines view is active
// unless linesActive is false.
func (l Layout) Panes(doc document.String, linesActive bool, width, height int) []projection.Pane {
	mode := l.LineNumbers
	panes := []projection.Pane{
		projection.NewLayoutPane(func(int, int) terminal.Terminal {
			return projection.LinesToTerminal(doc, projection.WithLineNumbers(mode))
		}, max(l.LinesProportion, 1), linesActive),
	}
	if !l.ShowRaw {
		return panes
	}
	if l.Separator {
		panes = append(panes, projection.NewPane(l.separator(width, height), 0, false))
	}
	panes = append(panes, projection.NewLayoutPane(func(int, int) terminal.Terminal {
		return projection.StringToTerminal(doc, 0, 0)
	}, max(l.RawProportion, 1), false))
	return panes
}

// Project lays doc out in a width x height viewport.
func (l Layout) Project(doc document.String, linesActive bool, width, height int) terminal.Terminal {
	return projection.Split(l.Orientation, l.Panes(doc, linesActive, width, height), width, height)
}

// separator is a bar across the split axis: a row of dashes, or a column of
// bars when panes sit side by side.
func (l Layout) separator(width, height int) terminal.Terminal {
	style := []terminal.StyleOption{
		terminal.WithBg(projection.SeparatorBg),
		terminal.WithFg(projection.SeparatorFg),
	}
	if l.Orientation == projection.Columns {
		frags := make([]terminal.TextFragment, max(height, 0))
		for y := range frags {
			frags[y] = terminal.NewFragment(0, y, "|")
		}
		return terminal.New(frags, nil).Style(style...)
	}
	bar := terminal.NewFragment(0, 0, strings.Repeat(string(projection.SeparatorRune), max(width, 0)))
	return terminal.New([]terminal.TextFragment{bar}, nil).Style(style...)
}
