package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/projterm/internal/renderer/core"
)

func newSimTerminal(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(width, height)
	return term, screen
}

// nextEvent skips events other than want, such as the initial resize.
func nextEvent(term *Terminal, want EventType) Event {
	for {
		ev := term.PollEvent()
		if ev.Type == want || ev.Type == EventNone {
			return ev
		}
	}
}

func TestTerminalCells(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 3)

	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(238, 232, 213)).
		WithBackground(core.ColorFromRGB(211, 54, 130)).
		Bold()
	term.SetCell(2, 1, core.NewStyledCell('Q', style))
	term.Show()

	got := term.GetCell(2, 1)
	if got.Rune != 'Q' {
		t.Errorf("expected Q, got %q", got.Rune)
	}
	if got.Style.Foreground != style.Foreground || got.Style.Background != style.Background {
		t.Errorf("colors lost: %+v", got.Style)
	}
	if !got.Style.Attributes.Has(core.AttrBold) {
		t.Error("bold lost")
	}

	if w, h := term.Size(); w != 10 || h != 3 {
		t.Errorf("expected 10x3, got %dx%d", w, h)
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 3)

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	ev := nextEvent(term, EventKey)
	if ev.Key != KeyRune || ev.Rune != 'z' {
		t.Errorf("expected rune z, got %+v", ev)
	}

	screen.InjectKey(tcell.KeyCtrlG, 0, tcell.ModCtrl)
	ev = nextEvent(term, EventKey)
	if r, ok := keyRune(ev); !ok || r != 0x07 {
		t.Errorf("expected Ctrl-G as 0x07, got %+v", ev)
	}

	screen.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	ev = nextEvent(term, EventKey)
	if ev.Key != KeyBackspace {
		t.Errorf("expected backspace, got %+v", ev)
	}
}

func TestTerminalInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 3)

	term.PostInterrupt(42)
	ev := nextEvent(term, EventInterrupt)
	if ev.Data != 42 {
		t.Errorf("expected payload 42, got %+v", ev)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		key  Key
		char rune
	}{
		{tcell.KeyBackspace, KeyBackspace, 0},
		{tcell.KeyTab, KeyTab, 0},
		{tcell.KeyEnter, KeyEnter, 0},
		{tcell.KeyCtrlB, KeyCtrl, 'b'},
		{tcell.KeyCtrlN, KeyCtrl, 'n'},
		{tcell.KeyF5, KeyNone, 0},
	}
	for _, tt := range tests {
		key, r := convertKey(tt.in, 0)
		if key != tt.key || r != tt.char {
			t.Errorf("convertKey(%v) = %v %q, want %v %q", tt.in, key, r, tt.key, tt.char)
		}
	}
}
