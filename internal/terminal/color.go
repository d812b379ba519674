package terminal

// Color is a symbolic color name resolved by the renderer's theme.
type Color string

// The palette the engine is allowed to reference.
const (
	ColorNone       Color = ""
	ColorBackground Color = "BACKGROUND"
	ColorForeground Color = "FOREGROUND"
	ColorBlack      Color = "BLACK"
	ColorBlue       Color = "BLUE"
	ColorCyan       Color = "CYAN"
	ColorGreen      Color = "GREEN"
	ColorMagenta    Color = "MAGENTA"
	ColorRed        Color = "RED"
	ColorWhite      Color = "WHITE"
	ColorYellow     Color = "YELLOW"
)

// Palette lists every named color in a stable order.
var Palette = []Color{
	ColorBackground,
	ColorForeground,
	ColorBlack,
	ColorBlue,
	ColorCyan,
	ColorGreen,
	ColorMagenta,
	ColorRed,
	ColorWhite,
	ColorYellow,
}

// IsNone reports whether no color is set, meaning the theme default applies.
func (c Color) IsNone() bool {
	return c == ColorNone
}

// Valid reports whether c is one of the palette names or ColorNone.
func (c Color) Valid() bool {
	if c == ColorNone {
		return true
	}
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}
