package placeholder

import (
	"fmt"
	"strings"

	"github.com/appkit-dev/appkit/pkg/dotpath"
)

// Render substitutes every {path} placeholder in template with the value
// resolved from data. Placeholders are matched non-overlapping, left to
// right; identical placeholders are resolved once and substituted at every
// occurrence. Absent paths and nil values render as the empty string.
func Render(data any, template string) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}

	// Resolution cache so repeated placeholders walk the data only once.
	var resolved map[string]string

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open == -1 {
			b.WriteString(template[i:])
			break
		}
		b.WriteString(template[i : i+open])
		i += open

		end := strings.IndexByte(template[i+1:], '}')
		if end == -1 {
			// Unterminated placeholder stays verbatim.
			b.WriteString(template[i:])
			break
		}

		path := template[i+1 : i+1+end]
		value, ok := resolved[path]
		if !ok {
			value = stringify(dotpath.Get(data, path, nil))
			if resolved == nil {
				resolved = make(map[string]string)
			}
			resolved[path] = value
		}
		b.WriteString(value)

		i += end + 2
	}

	return b.String()
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
