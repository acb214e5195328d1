package dotpath

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

// Getter is implemented by values that expose keyed lookup directly.
// Resolution prefers this interface over reflection when a node provides it.
type Getter interface {
	Get(key string) (any, bool)
}

var bracketReplacer = strings.NewReplacer("[", ".", "]", "")

// ToDot converts a bracket-form path to dot form:
// "book[author][name]" becomes "book.author.name".
// The input is not validated; unbalanced brackets yield an unspecified result.
func ToDot(path string) string {
	return bracketReplacer.Replace(path)
}

// ToBracket converts a dot-form path to bracket form:
// "book.author.name" becomes "book[author][name]".
// A single-segment path is returned unchanged.
func ToBracket(path string) string {
	segments := strings.Split(path, ".")
	if len(segments) == 1 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 2*(len(segments)-1))
	b.WriteString(segments[0])
	for _, seg := range segments[1:] {
		b.WriteByte('[')
		b.WriteString(seg)
		b.WriteByte(']')
	}
	return b.String()
}

// Get resolves a dot-form path against root and returns the value found, or
// def when any segment along the path is absent. Numeric segments index
// sequences; other segments look up map keys, struct fields, or Getter
// implementations. Get never panics.
func Get(root any, path string, def any) any {
	current := root
	for seg := range strings.SplitSeq(path, ".") {
		next, ok := lookup(current, seg)
		if !ok {
			return def
		}
		current = next
	}
	return current
}

// GetString resolves path and stringifies the result with %v.
// Absent paths and nil values yield def.
func GetString(root any, path string, def string) string {
	v := Get(root, path, nil)
	if v == nil {
		return def
	}
	return fmt.Sprintf("%v", v)
}

func lookup(node any, segment string) (any, bool) {
	if node == nil {
		return nil, false
	}

	// Numeric segments are indexed lookups first, regardless of node kind.
	if idx, err := strconv.Atoi(segment); err == nil && idx >= 0 {
		if v, ok := index(node, idx); ok {
			return v, true
		}
	}

	if g, ok := node.(Getter); ok {
		return g.Get(segment)
	}

	if m, ok := node.(map[string]any); ok {
		v, ok := m[segment]
		return v, ok
	}

	return reflectLookup(node, segment)
}

func index(node any, idx int) (any, bool) {
	switch s := node.(type) {
	case []any:
		if idx < len(s) {
			return s[idx], true
		}
		return nil, false
	case []string:
		if idx < len(s) {
			return s[idx], true
		}
		return nil, false
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && idx < rv.Len() {
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}

func reflectLookup(node any, segment string) (any, bool) {
	rv := reflect.ValueOf(node)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(segment).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Struct:
		f := rv.FieldByName(segment)
		if !f.IsValid() {
			// Exported fields are conventionally capitalized while paths
			// usually come from lowercase template text.
			f = rv.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, segment)
			})
		}
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}

	return nil, false
}

// Flatten converts nested maps into a single-level map with dot-form keys.
// Non-map values are kept as-is; prefix is prepended to every key when
// non-empty.
func Flatten(data map[string]any, prefix string) map[string]any {
	result := make(map[string]any, len(data))

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			maps.Copy(result, Flatten(v, fullKey))
		default:
			result[fullKey] = value
		}
	}

	return result
}
