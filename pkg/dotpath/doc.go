// Package dotpath provides path-based access to nested data structures.
//
// A path identifies a location inside nested maps, slices, or structs and can
// be written in two equivalent notations: dot form ("author.name") and
// bracket form ("author[name]"). The package converts between the two
// notations and resolves paths against arbitrary data with a caller-supplied
// default for absent values.
//
// # Path Resolution
//
// Get walks the data one segment at a time. Purely numeric segments are
// treated as sequence indexes; everything else is a keyed lookup. Resolution
// never panics and never returns an error — a missing segment at any depth
// yields the default:
//
//	book := map[string]any{
//		"title":  "Harry Potter",
//		"author": map[string]any{"name": "J.K. Rowling"},
//	}
//
//	dotpath.Get(book, "author.name", nil) // "J.K. Rowling"
//	dotpath.Get(book, "author.born", "?") // "?"
//
// # Notation Conversion
//
// ToDot and ToBracket are pure text transforms:
//
//	dotpath.ToDot("book[author][name]")   // "book.author.name"
//	dotpath.ToBracket("book.author.name") // "book[author][name]"
//
// Conversion performs no validation. Paths with unbalanced brackets or
// segments containing '.', '[' or ']' produce unspecified results.
//
// # Supported Node Kinds
//
// Resolution descends through map[string]any (and any string-keyed map),
// slices and arrays, exported struct fields, pointers, and values
// implementing the Getter interface. All functions are pure and safe for
// concurrent use.
package dotpath
