package projection

import (
	"testing"

	"github.com/dshills/projterm/internal/terminal"
)

func TestClipScrollPullsCursorIntoView(t *testing.T) {
	term := terminal.New(
		[]terminal.TextFragment{terminal.NewFragment(0, 0, "hello")},
		[]terminal.Cursor{{X: 5, Y: 0}},
	)
	got := ClipScroll(term, 2, 1)

	assertFragments(t, got.Fragments(), []terminal.TextFragment{{X: 0, Y: 0, Text: "o"}})
	if cur, ok := got.VisibleCursor(); !ok || cur != (terminal.Cursor{X: 1, Y: 0}) {
		t.Errorf("expected cursor (1,0), got %v", got.Cursors())
	}
}

func TestClipScrollMinimality(t *testing.T) {
	tests := []struct {
		cursor        terminal.Cursor
		width, height int
		dx, dy        int
	}{
		{terminal.Cursor{X: 0, Y: 0}, 5, 5, 0, 0},
		{terminal.Cursor{X: 4, Y: 4}, 5, 5, 0, 0},
		{terminal.Cursor{X: 5, Y: 0}, 5, 5, -1, 0},
		{terminal.Cursor{X: 2, Y: 9}, 5, 3, 0, -7},
		{terminal.Cursor{X: 20, Y: 20}, 10, 10, -11, -11},
	}
	for _, tt := range tests {
		term := terminal.New(nil, []terminal.Cursor{tt.cursor})
		dx, dy := ScrollOffset(term, tt.width, tt.height)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("cursor %v in %dx%d: expected (%d,%d), got (%d,%d)",
				tt.cursor, tt.width, tt.height, tt.dx, tt.dy, dx, dy)
		}
	}
}

func TestClipScrollWithoutCursorOnlyClips(t *testing.T) {
	term := terminal.New([]terminal.TextFragment{
		terminal.NewFragment(0, 0, "abcdef"),
		terminal.NewFragment(0, 3, "below"),
	}, nil)
	got := ClipScroll(term, 3, 2)

	assertFragments(t, got.Fragments(), []terminal.TextFragment{{X: 0, Y: 0, Text: "abc"}})
}

func TestClipScrollFollowsLastCursor(t *testing.T) {
	term := terminal.New(
		[]terminal.TextFragment{terminal.NewFragment(0, 0, "0123456789")},
		[]terminal.Cursor{{X: 1, Y: 0}, {X: 9, Y: 0}},
	)
	got := ClipScroll(term, 4, 1)

	assertFragments(t, got.Fragments(), []terminal.TextFragment{{X: 0, Y: 0, Text: "6789"}})
	if cursors := got.Cursors(); len(cursors) != 1 || cursors[0] != (terminal.Cursor{X: 3, Y: 0}) {
		t.Errorf("expected only the visible cursor to survive at (3,0), got %v", cursors)
	}
}

func TestClipScrollMeta(t *testing.T) {
	inner := terminal.New(nil, []terminal.Cursor{{X: 7, Y: 0}})
	got := ClipScroll(inner, 4, 2)

	meta, ok := got.Meta().(ClipScrollMeta)
	if !ok {
		t.Fatalf("expected ClipScrollMeta, got %T", got.Meta())
	}
	if meta.Width != 4 || meta.Height != 2 || meta.DX != -4 || meta.DY != 0 {
		t.Errorf("unexpected meta %+v", meta)
	}
	if len(meta.Inner.Cursors()) != 1 || meta.Inner.Cursors()[0].X != 7 {
		t.Errorf("expected the unscrolled terminal in meta, got %v", meta.Inner)
	}
}
