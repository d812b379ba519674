package renderer

import (
	"errors"
	"fmt"

	"github.com/dshills/projterm/internal/renderer/core"
	"github.com/dshills/projterm/internal/terminal"
)

// ErrUnknownColor is returned when a theme names a color outside the palette.
var ErrUnknownColor = errors.New("unknown palette color")

// secondaryCursorBlend is how far secondary cursors move from the
// background toward the foreground.
const secondaryCursorBlend = 0.35

// Theme resolves symbolic colors to RGB.
type Theme struct {
	colors map[terminal.Color]core.Color
}

// defaultHex is the Solarized palette.
var defaultHex = map[terminal.Color]string{
	terminal.ColorBackground: "#002b36",
	terminal.ColorForeground: "#657b83",
	terminal.ColorBlack:      "#073642",
	terminal.ColorBlue:       "#268bd2",
	terminal.ColorCyan:       "#2aa198",
	terminal.ColorGreen:      "#859900",
	terminal.ColorMagenta:    "#d33682",
	terminal.ColorRed:        "#dc322f",
	terminal.ColorWhite:      "#eee8d5",
	terminal.ColorYellow:     "#b58900",
}

// DefaultTheme returns the Solarized theme.
func DefaultTheme() Theme {
	t, err := NewTheme(defaultHex)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTheme builds a theme from hex strings. Palette entries missing from
// hex keep their default.
func NewTheme(hex map[terminal.Color]string) (Theme, error) {
	colors := make(map[terminal.Color]core.Color, len(terminal.Palette))
	for _, name := range terminal.Palette {
		colors[name], _ = core.ColorFromHex(defaultHex[name])
	}
	for name, value := range hex {
		if name.IsNone() || !name.Valid() {
			return Theme{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		c, err := core.ColorFromHex(value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", name, err)
		}
		colors[name] = c
	}
	return Theme{colors: colors}, nil
}

// Color resolves a symbolic color. ColorNone resolves to the terminal
// default.
func (t Theme) Color(c terminal.Color) core.Color {
	if rgb, ok := t.colors[c]; ok {
		return rgb
	}
	return core.ColorDefault
}

// Base is the style of cells without content: foreground on background.
func (t Theme) Base() core.Style {
	return core.Style{
		Foreground: t.Color(terminal.ColorForeground),
		Background: t.Color(terminal.ColorBackground),
	}
}

// Style resolves a fragment's styling over the base style.
func (t Theme) Style(f terminal.TextFragment) core.Style {
	s := t.Base()
	if !f.Fg.IsNone() {
		s = s.WithForeground(t.Color(f.Fg))
	}
	if !f.Bg.IsNone() {
		s = s.WithBackground(t.Color(f.Bg))
	}
	if f.Bold {
		s = s.Bold()
	}
	return s
}

// SecondaryCursor is the background used for cursors other than the
// visible one.
func (t Theme) SecondaryCursor() core.Color {
	bg := t.Color(terminal.ColorBackground)
	return bg.Blend(t.Color(terminal.ColorForeground), secondaryCursorBlend)
}
