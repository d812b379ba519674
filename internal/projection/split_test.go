package projection

import (
	"strings"
	"testing"

	"github.com/dshills/projterm/internal/terminal"
)

func block(text string, rows int) terminal.Terminal {
	frags := make([]terminal.TextFragment, rows)
	for y := range frags {
		frags[y] = terminal.NewFragment(0, y, text)
	}
	return terminal.New(frags, nil)
}

func rowsOf(term terminal.Terminal, text string) []int {
	var rows []int
	for _, f := range term.Fragments() {
		if f.Text == text {
			rows = append(rows, f.Y)
		}
	}
	return rows
}

func TestSplitIntoRowsEqualProportions(t *testing.T) {
	a := block(strings.Repeat("a", 10), 2)
	b := block(strings.Repeat("b", 10), 2)

	got := SplitIntoRows([]Pane{NewPane(a, 1, true), NewPane(b, 1, false)}, 10, 6)

	if rows := rowsOf(got, strings.Repeat("a", 10)); len(rows) != 2 || rows[0] != 0 || rows[1] != 1 {
		t.Errorf("expected pane A at rows 0-1, got %v", rows)
	}
	if rows := rowsOf(got, strings.Repeat("b", 10)); len(rows) != 2 || rows[0] != 3 || rows[1] != 4 {
		t.Errorf("expected pane B at rows 3-4, got %v", rows)
	}
	meta := got.Meta().(SplitMeta)
	if meta.Sizes[0] != 3 || meta.Sizes[1] != 3 {
		t.Errorf("expected sizes [3 3], got %v", meta.Sizes)
	}
}

func TestSplitIntoRowsFixedPane(t *testing.T) {
	separator := terminal.New([]terminal.TextFragment{terminal.NewFragment(0, 0, "---")}, nil)
	panes := []Pane{
		NewPane(block("top", 5), 3, true),
		NewPane(separator, 0, false),
		NewPane(block("raw", 5), 1, false),
	}
	got := SplitIntoRows(panes, 3, 5)

	meta := got.Meta().(SplitMeta)
	if want := []int{3, 1, 1}; meta.Sizes[0] != want[0] || meta.Sizes[1] != want[1] || meta.Sizes[2] != want[2] {
		t.Errorf("expected sizes %v, got %v", want, meta.Sizes)
	}
	if rows := rowsOf(got, "---"); len(rows) != 1 || rows[0] != 3 {
		t.Errorf("expected separator on row 3, got %v", rows)
	}
	if rows := rowsOf(got, "raw"); len(rows) != 1 || rows[0] != 4 {
		t.Errorf("expected one raw row on row 4, got %v", rows)
	}
}

func TestSplitSizeConservation(t *testing.T) {
	paneSets := [][]Pane{
		{NewPane(block("x", 1), 1, true)},
		{NewPane(block("x", 1), 1, true), NewPane(block("y", 1), 2, false), NewPane(block("z", 1), 4, false)},
		{NewPane(block("x", 4), 0, false), NewPane(block("y", 4), 0, false), NewPane(block("z", 1), 1, true)},
		{NewPane(block("x", 9), 0, true)},
	}
	for _, panes := range paneSets {
		for _, total := range []int{0, 1, 2, 5, 7, 13} {
			for _, orientation := range []Orientation{Rows, Columns} {
				got := Split(orientation, panes, total, total)
				meta := got.Meta().(SplitMeta)

				sum := 0
				for _, size := range meta.Sizes {
					if size < 0 {
						t.Errorf("negative size in %v", meta.Sizes)
					}
					sum += size
				}
				if sum > total {
					t.Errorf("%v total %d: sizes %v exceed it", orientation, total, meta.Sizes)
				}
				for _, f := range got.Fragments() {
					if f.Y < 0 || f.Y >= total || f.X < 0 || f.X+f.Width() > total {
						t.Errorf("fragment %v escapes %dx%d", f, total, total)
					}
				}
			}
		}
	}
}

func TestSplitOnlyFixedPanes(t *testing.T) {
	got := SplitIntoRows([]Pane{NewPane(block("x", 1), 0, true)}, 4, 4)

	if rows := rowsOf(got, "x"); len(rows) != 1 || rows[0] != 0 {
		t.Errorf("expected one row of x, got %v", got.Fragments())
	}
	if got := SplitIntoRows(nil, 4, 4); len(got.Fragments()) != 0 {
		t.Errorf("expected empty split, got %v", got.Fragments())
	}
}

func TestSplitIntoColumns(t *testing.T) {
	left := block("L", 3)
	right := block("R", 3)

	got := SplitIntoColumns([]Pane{NewPane(left, 1, false), NewPane(right, 1, true)}, 10, 3)

	for _, f := range got.Fragments() {
		switch f.Text {
		case "L":
			if f.X != 0 {
				t.Errorf("expected left pane at x=0, got %v", f)
			}
		case "R":
			if f.X != 5 {
				t.Errorf("expected right pane at x=5, got %v", f)
			}
		}
	}
	if got.Meta().(SplitMeta).Orientation != Columns {
		t.Error("expected columns orientation in meta")
	}
}

func TestSplitCursorsFromActivePaneOnly(t *testing.T) {
	a := terminal.New(nil, []terminal.Cursor{{X: 1, Y: 0}})
	b := terminal.New(nil, []terminal.Cursor{{X: 2, Y: 1}})

	got := SplitIntoRows([]Pane{NewPane(a, 1, false), NewPane(b, 1, true)}, 4, 4)

	cursors := got.Cursors()
	if len(cursors) != 1 || cursors[0] != (terminal.Cursor{X: 2, Y: 3}) {
		t.Errorf("expected active pane cursor at (2,3), got %v", cursors)
	}
	if got.Meta().(SplitMeta).Active != 1 {
		t.Errorf("expected active index 1")
	}

	none := SplitIntoRows([]Pane{NewPane(a, 1, false), NewPane(b, 1, false)}, 4, 4)
	if len(none.Cursors()) != 0 {
		t.Errorf("expected no cursors without an active pane, got %v", none.Cursors())
	}
}

func TestSplitLayoutPaneGetsChildSize(t *testing.T) {
	var gotW, gotH int
	layout := func(width, height int) terminal.Terminal {
		gotW, gotH = width, height
		return terminal.Terminal{}
	}
	SplitIntoRows([]Pane{NewLayoutPane(layout, 3, true), NewPane(block("x", 1), 1, false)}, 7, 8)

	if gotW != 7 || gotH != 6 {
		t.Errorf("expected layout called with 7x6, got %dx%d", gotW, gotH)
	}
}

func TestSplitNested(t *testing.T) {
	inner := func(width, height int) terminal.Terminal {
		return SplitIntoColumns([]Pane{
			NewPane(block("l", 1), 1, false),
			NewPane(block("r", 1), 1, true),
		}, width, height)
	}
	got := SplitIntoRows([]Pane{
		NewPane(block("top", 1), 0, false),
		NewLayoutPane(inner, 1, true),
	}, 8, 4)

	for _, f := range got.Fragments() {
		if f.Text == "r" && (f.X != 4 || f.Y != 1) {
			t.Errorf("expected nested right pane at (4,1), got %v", f)
		}
	}
}

func TestSplitScrollsPanesToCursor(t *testing.T) {
	tall := terminal.New(
		[]terminal.TextFragment{terminal.NewFragment(0, 0, "first"), terminal.NewFragment(0, 9, "last")},
		[]terminal.Cursor{{X: 0, Y: 9}},
	)
	got := SplitIntoRows([]Pane{NewPane(tall, 1, true)}, 5, 3)

	if rows := rowsOf(got, "last"); len(rows) != 1 || rows[0] != 2 {
		t.Errorf("expected last row scrolled to row 2, got %v", got.Fragments())
	}
	if rows := rowsOf(got, "first"); len(rows) != 0 {
		t.Errorf("expected first row scrolled away, got %v", rows)
	}
}

func TestParseOrientation(t *testing.T) {
	if o, ok := ParseOrientation("Columns"); !ok || o != Columns {
		t.Errorf("expected columns, got %v %v", o, ok)
	}
	if o, ok := ParseOrientation("diagonal"); ok || o != Rows {
		t.Errorf("expected rejection, got %v %v", o, ok)
	}
}
