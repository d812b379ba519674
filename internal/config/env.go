package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvLoader overlays configuration from environment variables.
//
// PROJTERM_LAYOUT_LINES_PROPORTION=2 sets layout.lines_proportion: the first
// word after the prefix names the section and the rest, joined by
// underscores, the key.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// Load returns the prefixed variables as a section -> key -> value map.
func (l *EnvLoader) Load() map[string]any {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		section, key, ok := l.envToPath(name)
		if !ok {
			continue
		}
		table, _ := config[section].(map[string]any)
		if table == nil {
			table = make(map[string]any)
			config[section] = table
		}
		table[key] = parseValue(value)
	}
	return config
}

// Apply decodes the environment over cfg.
// Variables that do not name a known setting are reported as a ParseError.
func (l *EnvLoader) Apply(cfg *Config) error {
	values := l.Load()
	if len(values) == 0 {
		return nil
	}
	data, err := toml.Marshal(values)
	if err != nil {
		return &ParseError{Path: "<environment>", Message: err.Error(), Err: err}
	}
	if err := decode("<environment>", strings.NewReader(string(data)), cfg); err != nil {
		return err
	}
	return nil
}

// envToPath converts PROJTERM_THEME_YELLOW to ("theme", "yellow").
func (l *EnvLoader) envToPath(env string) (section, key string, ok bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok = strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return "", "", false
	}
	return section, key, true
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	return s
}
