package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/appkit-dev/appkit/pkg/dotpath"
)

// Config holds merged configuration values. It is immutable after Load
// and safe for concurrent use.
type Config struct {
	values map[string]any
}

// New creates a Config from an already-built value tree. The map is used
// as-is; callers must not mutate it afterwards.
func New(values map[string]any) *Config {
	if values == nil {
		values = map[string]any{}
	}
	return &Config{values: values}
}

// Load reads the named files from fsys in order and deep-merges them into a
// single Config. File format is selected by extension (.yaml, .yml, .json).
// Environment references are expanded before parsing; see the package docs
// for the supported operators.
func Load(fsys fs.FS, files ...string) (*Config, error) {
	merged := make(map[string]any)

	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", name, err)
		}

		expanded, err := expandEnv(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w (in %q)", err, name)
		}

		var values map[string]any
		switch strings.ToLower(path.Ext(name)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal([]byte(expanded), &values); err != nil {
				return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
			}
		case ".json":
			if err := json.Unmarshal([]byte(expanded), &values); err != nil {
				return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
		}

		merged = merge(merged, values)
	}

	return &Config{values: merged}, nil
}

// merge deep-merges src into dst, returning a new map. Nested maps are
// merged key by key; any other value in src replaces the dst value.
func merge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcOK := v.(map[string]any)
		dstMap, dstOK := out[k].(map[string]any)
		if srcOK && dstOK {
			out[k] = merge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

// Get returns the value at the dot-form path, or def when absent.
func (c *Config) Get(path string, def any) any {
	return dotpath.Get(c.values, path, def)
}

// Has reports whether the path resolves to a value.
func (c *Config) Has(path string) bool {
	return dotpath.Get(c.values, path, missing{}) != any(missing{})
}

// String returns the value at path stringified with %v, or def when absent.
func (c *Config) String(path, def string) string {
	return dotpath.GetString(c.values, path, def)
}

// Int returns the value at path as an int, or def when absent or not
// convertible. String values are parsed so ${VAR} substitutions work for
// numeric settings.
func (c *Config) Int(path string, def int) int {
	switch v := c.Get(path, nil).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Bool returns the value at path as a bool, or def when absent or not
// convertible.
func (c *Config) Bool(path string, def bool) bool {
	switch v := c.Get(path, nil).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

// Duration returns the value at path parsed as a time.Duration ("5s",
// "1m30s"), or def when absent or unparsable. Bare numbers are seconds.
func (c *Config) Duration(path string, def time.Duration) time.Duration {
	switch v := c.Get(path, nil).(type) {
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	}
	return def
}

// Sub returns the nested map at path wrapped in a new Config, or an empty
// Config when the path does not resolve to a map.
func (c *Config) Sub(path string) *Config {
	if m, ok := c.Get(path, nil).(map[string]any); ok {
		return &Config{values: m}
	}
	return &Config{values: map[string]any{}}
}

// All returns the configuration flattened to dot-form keys.
func (c *Config) All() map[string]any {
	return dotpath.Flatten(c.values, "")
}

type missing struct{}
