package config

import (
	"fmt"
	"os"
	"strings"
)

// expandEnv substitutes ${VAR}, ${VAR:-default}, and ${VAR:?message}
// references with values from the process environment. "$$" escapes a
// literal dollar sign; expressions that do not parse are left verbatim.
func expandEnv(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			b.WriteByte(ch)
			i++
			continue
		}

		if text[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}

		if text[i+1] != '{' {
			b.WriteByte(ch)
			i++
			continue
		}

		end := strings.IndexByte(text[i+2:], '}')
		if end == -1 {
			b.WriteString(text[i:])
			break
		}

		expr := text[i+2 : i+2+end]
		value, ok, err := evalEnvExpr(expr)
		if err != nil {
			return "", err
		}
		if ok {
			b.WriteString(value)
		} else {
			b.WriteString(text[i : i+2+end+1])
		}

		i += end + 3
	}

	return b.String(), nil
}

func evalEnvExpr(expr string) (string, bool, error) {
	name := expr
	op := ""
	word := ""

	if idx := strings.Index(expr, ":-"); idx >= 0 {
		name, op, word = expr[:idx], ":-", expr[idx+2:]
	} else if idx := strings.Index(expr, ":?"); idx >= 0 {
		name, op, word = expr[:idx], ":?", expr[idx+2:]
	}

	if !validEnvName(name) {
		return "", false, nil
	}

	val, isSet := os.LookupEnv(name)
	switch op {
	case ":-":
		if !isSet || val == "" {
			return word, true, nil
		}
	case ":?":
		if !isSet || val == "" {
			if word == "" {
				word = "parameter null or not set"
			}
			return "", false, fmt.Errorf("%w: %s: %s", ErrRequiredEnv, name, word)
		}
	}
	return val, true, nil
}

func validEnvName(name string) bool {
	if name == "" {
		return false
	}
	for i := range len(name) {
		ch := name[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= 'a' && ch <= 'z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
