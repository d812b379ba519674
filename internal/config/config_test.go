package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/projterm/internal/projection"
	"github.com/dshills/projterm/internal/terminal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.LinesProportion != 3 || cfg.Editor.InitialWidth != 80 {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if _, err := Load(""); err != nil {
		t.Errorf("Load with empty path: %v", err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[layout]
orientation = "columns"
raw_proportion = 2

[theme]
yellow = "#ffcc00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Orientation != "columns" || cfg.Layout.RawProportion != 2 {
		t.Errorf("layout not applied: %+v", cfg.Layout)
	}
	if cfg.Layout.LinesProportion != 3 || !cfg.Layout.ShowRaw {
		t.Errorf("unset keys lost their defaults: %+v", cfg.Layout)
	}
	if cfg.Theme.Yellow != "#ffcc00" || cfg.Theme.Background != "#002b36" {
		t.Errorf("theme not merged: %+v", cfg.Theme)
	}

	l := cfg.Layout.EditorLayout()
	if l.Orientation != projection.Columns || l.RawProportion != 2 {
		t.Errorf("unexpected editor layout %+v", l)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "[layout\norientation = 1\n")
	_, err := Load(path)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != path || pe.Line == 0 {
		t.Errorf("expected location in %s, got %+v", path, pe)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[layout]\norientaton = \"rows\"\n")
	_, err := Load(path)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(pe.Message, "orientaton") {
		t.Errorf("expected the unknown key named, got %q", pe.Message)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
		path   string
	}{
		{"orientation", func(c *Config) { c.Layout.Orientation = "diagonal" }, ErrInvalidValue, "layout.orientation"},
		{"line numbers", func(c *Config) { c.Layout.LineNumbers = "roman" }, ErrInvalidValue, "layout.line_numbers"},
		{"proportion", func(c *Config) { c.Layout.LinesProportion = 0 }, ErrInvalidValue, "layout.lines_proportion"},
		{"color", func(c *Config) { c.Theme.Red = "red" }, ErrInvalidColor, "theme.red"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalidValue, "log.level"},
		{"width", func(c *Config) { c.Editor.InitialWidth = 0 }, ErrInvalidValue, "editor.initial_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("expected path %s, got %v", tt.path, err)
			}
		})
	}
}

func TestThemeColorsCoverPalette(t *testing.T) {
	colors := Default().Theme.Colors()
	for _, name := range terminal.Palette {
		if colors[name] == "" {
			t.Errorf("no color for %s", name)
		}
	}
}
