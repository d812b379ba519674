// Package config loads projterm settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default ~/.config/projterm/config.toml
//  3. PROJTERM_* environment variables
//
// Command line flags are applied on top by the caller.
//
// A missing file is not an error. Unknown keys and invalid values are.
//
// # File format
//
//	[log]
//	level = "info"
//	file = "/tmp/projterm.log"
//
//	[theme]
//	background = "#002b36"
//	yellow = "#b58900"
//
//	[layout]
//	orientation = "rows"      # or "columns"
//	lines_proportion = 3
//	raw_proportion = 1
//	show_raw = true
//	separator = true
//	line_numbers = "absolute" # or "relative", "hybrid"
//
//	[editor]
//	initial_width = 80
//	initial_height = 24
//
// Environment variables name a section and a key, for example
// PROJTERM_LAYOUT_ORIENTATION=columns or PROJTERM_THEME_YELLOW=#ffcc00.
//
// # Live reload
//
// Watcher reports changes to the config file through fsnotify so a running
// application can reload it.
package config
