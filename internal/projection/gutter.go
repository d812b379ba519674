package projection

import (
	"strconv"
	"strings"
)

// LineNumberMode defines how gutter line numbers are displayed.
type LineNumberMode uint8

const (
	// LineNumberAbsolute shows absolute line numbers (1, 2, 3, ...).
	LineNumberAbsolute LineNumberMode = iota

	// LineNumberRelative shows distances from the cursor line, 0 on it.
	LineNumberRelative

	// LineNumberHybrid shows the absolute number on the cursor line and
	// distances elsewhere.
	LineNumberHybrid
)

// ParseLineNumberMode maps a config name to a mode.
func ParseLineNumberMode(s string) (LineNumberMode, bool) {
	switch strings.ToLower(s) {
	case "", "absolute":
		return LineNumberAbsolute, true
	case "relative":
		return LineNumberRelative, true
	case "hybrid":
		return LineNumberHybrid, true
	default:
		return LineNumberAbsolute, false
	}
}

func (m LineNumberMode) String() string {
	switch m {
	case LineNumberRelative:
		return "relative"
	case LineNumberHybrid:
		return "hybrid"
	default:
		return "absolute"
	}
}

// lineNumberFormatter formats gutter numbers for one projection.
type lineNumberFormatter struct {
	mode        LineNumberMode
	width       int
	currentLine int
}

// format returns the right-aligned label for the 0-based row.
func (f lineNumberFormatter) format(row int) string {
	return padLeft(strconv.Itoa(f.number(row)), f.width)
}

func (f lineNumberFormatter) number(row int) int {
	switch f.mode {
	case LineNumberRelative:
		return absDiff(row, f.currentLine)
	case LineNumberHybrid:
		if row == f.currentLine {
			return row + 1
		}
		return absDiff(row, f.currentLine)
	default:
		return row + 1
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// padLeft pads s with spaces on the left to width runes.
func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// padRight pads s with spaces on the right to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
