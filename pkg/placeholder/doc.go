// Package placeholder renders text templates containing {path} substitution
// points against nested data structures.
//
// A placeholder is delimited by the first '{' and the next '}' with no
// nesting. Its content is a dot-form path resolved through
// [github.com/appkit-dev/appkit/pkg/dotpath], so placeholders reach into
// nested maps, slices, and structs:
//
//	data := map[string]any{
//		"title":  "Harry Potter",
//		"author": map[string]any{"name": "J.K. Rowling"},
//	}
//
//	out := placeholder.Render(data, "The book {title} was written by {author.name}")
//	// "The book Harry Potter was written by J.K. Rowling"
//
// Paths that resolve to nothing substitute the empty string; any other value
// is formatted with %v, including composite values. A template without
// placeholders is returned unchanged, and an unterminated '{' is left
// verbatim. Rendering is pure and safe for concurrent use.
package placeholder
