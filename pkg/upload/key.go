package upload

import (
	"mime"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BuildKey derives a collision-safe storage key from a filename:
// the base name is slugified, a random hex suffix is appended, and the
// extension (lowercased) is preserved. A non-empty prefix becomes the
// leading path segment.
func BuildKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := Slugify(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if base == "" {
		base = "file"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	key := base + "-" + suffix + ext
	if prefix != "" {
		key = prefix + "/" + key
	}
	return key
}

// ExtensionFor returns a filename extension for a MIME type, used when the
// original filename has none.
func ExtensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases the input, strips diacritics, and collapses every
// non-alphanumeric run into a single hyphen.
func Slugify(s string) string {
	if flat, _, err := transform.String(deaccent, s); err == nil {
		s = flat
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
