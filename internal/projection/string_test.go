package projection

import (
	"testing"

	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/terminal"
)

func assertFragments(t *testing.T, got, want []terminal.TextFragment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d fragments, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestStringToTerminalSelection(t *testing.T) {
	doc := document.New("hello", document.NewSelection(1, 3))
	term := StringToTerminal(doc, 0, 0)

	assertFragments(t, term.Fragments(), []terminal.TextFragment{
		{X: 0, Y: 0, Text: "h"},
		{X: 1, Y: 0, Text: "ell", Bg: terminal.ColorYellow},
		{X: 4, Y: 0, Text: "o"},
	})
	cur, ok := term.VisibleCursor()
	if !ok || cur != (terminal.Cursor{X: 4, Y: 0}) {
		t.Errorf("expected cursor (4,0), got %v", term.Cursors())
	}
}

func TestStringToTerminalEscapesNewlines(t *testing.T) {
	doc := document.FromString("1\n2", 1)
	term := StringToTerminal(doc, 0, 0)

	assertFragments(t, term.Fragments(), []terminal.TextFragment{
		{X: 0, Y: 0, Text: "1"},
		{X: 1, Y: 0, Text: `\n`, Fg: terminal.ColorMagenta},
		{X: 3, Y: 0, Text: "2"},
	})
	if got := term.Cursors(); len(got) != 1 || got[0] != (terminal.Cursor{X: 1, Y: 0}) {
		t.Errorf("expected cursor (1,0), got %v", got)
	}
}

func TestStringToTerminalSelectedNewlineKeepsHighlight(t *testing.T) {
	doc := document.New("a\nb", document.NewSelection(0, 3))
	term := StringToTerminal(doc, 0, 0)

	for _, f := range term.Fragments() {
		if f.Bg != terminal.ColorYellow {
			t.Errorf("expected every fragment highlighted, got %v", f)
		}
	}
	cur, _ := term.VisibleCursor()
	if cur.X != 4 {
		t.Errorf("expected cursor after the escaped break at x=4, got %v", cur)
	}
}

func TestStringToTerminalOrigin(t *testing.T) {
	doc := document.FromString("abc", 3)
	term := StringToTerminal(doc, 5, 2)

	frags := term.Fragments()
	if len(frags) != 1 || frags[0].X != 5 || frags[0].Y != 2 {
		t.Errorf("expected fragment at (5,2), got %v", frags)
	}
	if cur, _ := term.VisibleCursor(); cur != (terminal.Cursor{X: 8, Y: 2}) {
		t.Errorf("expected cursor (8,2), got %v", cur)
	}

	meta, ok := term.Meta().(StringMeta)
	if !ok {
		t.Fatalf("expected StringMeta, got %T", term.Meta())
	}
	if meta.X != 5 || meta.Y != 2 || !meta.Source.Equal(doc) {
		t.Errorf("unexpected meta %+v", meta)
	}
}

func TestStringToTerminalNeverEmitsEmptyFragments(t *testing.T) {
	docs := []document.String{
		document.New(""),
		document.New("", document.NewCaret(0)),
		document.New("abc", document.NewCaret(0), document.NewCaret(3)),
		document.New("\n\n", document.NewSelection(1, 0)),
		document.New("abc", document.NewCaret(10)),
		document.New("abc", document.NewCaret(-2)),
		document.New("abcdef", document.NewSelection(4, -3), document.NewSelection(5, 1)),
	}
	for _, doc := range docs {
		for _, f := range StringToTerminal(doc, 0, 0).Fragments() {
			if f.Text == "" {
				t.Errorf("empty fragment projecting %v", doc)
			}
		}
	}
}

func TestStringToTerminalCursorPerSelection(t *testing.T) {
	doc := document.New("abcdef", document.NewCaret(1), document.NewSelection(3, 2))
	term := StringToTerminal(doc, 0, 0)

	want := []terminal.Cursor{{X: 1, Y: 0}, {X: 5, Y: 0}}
	got := term.Cursors()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cursor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
