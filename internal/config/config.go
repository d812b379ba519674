package config

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/projterm/internal/editor"
	"github.com/dshills/projterm/internal/projection"
	"github.com/dshills/projterm/internal/terminal"
)

// Config is the complete set of settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Theme  ThemeConfig  `toml:"theme"`
	Layout LayoutConfig `toml:"layout"`
	Editor EditorConfig `toml:"editor"`
}

// LogConfig controls the application log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty discards output, since the
	// terminal owns stdout while running.
	File string `toml:"file"`
}

// ThemeConfig maps each symbolic color to a hex value.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Black      string `toml:"black"`
	Blue       string `toml:"blue"`
	Cyan       string `toml:"cyan"`
	Green      string `toml:"green"`
	Magenta    string `toml:"magenta"`
	Red        string `toml:"red"`
	White      string `toml:"white"`
	Yellow     string `toml:"yellow"`
}

// LayoutConfig controls the panes below the status bar.
type LayoutConfig struct {
	Orientation     string `toml:"orientation"`
	LinesProportion int    `toml:"lines_proportion"`
	RawProportion   int    `toml:"raw_proportion"`
	ShowRaw         bool   `toml:"show_raw"`
	Separator       bool   `toml:"separator"`
	LineNumbers     string `toml:"line_numbers"`
}

// EditorConfig holds the viewport used before the first resize.
type EditorConfig struct {
	InitialWidth  int `toml:"initial_width"`
	InitialHeight int `toml:"initial_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Theme: ThemeConfig{
			Background: "#002b36",
			Foreground: "#657b83",
			Black:      "#073642",
			Blue:       "#268bd2",
			Cyan:       "#2aa198",
			Green:      "#859900",
			Magenta:    "#d33682",
			Red:        "#dc322f",
			White:      "#eee8d5",
			Yellow:     "#b58900",
		},
		Layout: LayoutConfig{
			Orientation:     "rows",
			LinesProportion: 3,
			RawProportion:   1,
			ShowRaw:         true,
			Separator:       true,
			LineNumbers:     "absolute",
		},
		Editor: EditorConfig{
			InitialWidth:  80,
			InitialHeight: 24,
		},
	}
}

// Colors returns the theme keyed by symbolic color.
func (t ThemeConfig) Colors() map[terminal.Color]string {
	return map[terminal.Color]string{
		terminal.ColorBackground: t.Background,
		terminal.ColorForeground: t.Foreground,
		terminal.ColorBlack:      t.Black,
		terminal.ColorBlue:       t.Blue,
		terminal.ColorCyan:       t.Cyan,
		terminal.ColorGreen:      t.Green,
		terminal.ColorMagenta:    t.Magenta,
		terminal.ColorRed:        t.Red,
		terminal.ColorWhite:      t.White,
		terminal.ColorYellow:     t.Yellow,
	}
}

// EditorLayout converts the settings to an editor layout.
// Call Validate first; unknown names fall back to the defaults.
func (l LayoutConfig) EditorLayout() editor.Layout {
	orientation, _ := projection.ParseOrientation(l.Orientation)
	numbers, _ := projection.ParseLineNumberMode(l.LineNumbers)
	return editor.Layout{
		Orientation:     orientation,
		LinesProportion: l.LinesProportion,
		RawProportion:   l.RawProportion,
		ShowRaw:         l.ShowRaw,
		Separator:       l.Separator,
		LineNumbers:     numbers,
	}
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error
	invalid := func(path string, value any, err error) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Err: err})
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		invalid("log.level", c.Log.Level, ErrInvalidValue)
	}

	for _, name := range terminal.Palette {
		hex := c.Theme.Colors()[name]
		if _, err := colorful.Hex(hex); err != nil {
			invalid("theme."+strings.ToLower(string(name)), hex, ErrInvalidColor)
		}
	}

	if _, ok := projection.ParseOrientation(c.Layout.Orientation); !ok {
		invalid("layout.orientation", c.Layout.Orientation, ErrInvalidValue)
	}
	if _, ok := projection.ParseLineNumberMode(c.Layout.LineNumbers); !ok {
		invalid("layout.line_numbers", c.Layout.LineNumbers, ErrInvalidValue)
	}
	if c.Layout.LinesProportion < 1 {
		invalid("layout.lines_proportion", c.Layout.LinesProportion, ErrInvalidValue)
	}
	if c.Layout.RawProportion < 1 {
		invalid("layout.raw_proportion", c.Layout.RawProportion, ErrInvalidValue)
	}

	if c.Editor.InitialWidth < 1 {
		invalid("editor.initial_width", c.Editor.InitialWidth, ErrInvalidValue)
	}
	if c.Editor.InitialHeight < 1 {
		invalid("editor.initial_height", c.Editor.InitialHeight, ErrInvalidValue)
	}

	return errors.Join(errs...)
}
