package placeholder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appkit-dev/appkit/pkg/placeholder"
)

func TestRender(t *testing.T) {
	t.Parallel()

	bookData := map[string]any{
		"title": "Harry Potter",
		"author": map[string]any{
			"name": "J.K. Rowling",
		},
		"year":  1997,
		"tags":  []any{"fantasy", "magic"},
		"blank": nil,
	}

	tests := []struct {
		name     string
		data     any
		template string
		expected string
	}{
		{
			name:     "no placeholders returned unchanged",
			data:     bookData,
			template: "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "single placeholder",
			data:     bookData,
			template: "The book {title}",
			expected: "The book Harry Potter",
		},
		{
			name:     "nested path placeholder",
			data:     bookData,
			template: "The book {title} was written by {author.name}",
			expected: "The book Harry Potter was written by J.K. Rowling",
		},
		{
			name:     "missing path renders empty",
			data:     bookData,
			template: "Publisher: {publisher.name}.",
			expected: "Publisher: .",
		},
		{
			name:     "nil value renders empty",
			data:     bookData,
			template: "[{blank}]",
			expected: "[]",
		},
		{
			name:     "non-string value formatted",
			data:     bookData,
			template: "Published in {year}",
			expected: "Published in 1997",
		},
		{
			name:     "numeric segment",
			data:     bookData,
			template: "First tag: {tags.0}",
			expected: "First tag: fantasy",
		},
		{
			name:     "repeated placeholder substituted everywhere",
			data:     bookData,
			template: "{title} and {title} again",
			expected: "Harry Potter and Harry Potter again",
		},
		{
			name:     "unterminated placeholder left verbatim",
			data:     bookData,
			template: "broken {title",
			expected: "broken {title",
		},
		{
			name:     "unterminated after valid placeholder",
			data:     bookData,
			template: "{title} then {oops",
			expected: "Harry Potter then {oops",
		},
		{
			name:     "adjacent placeholders",
			data:     bookData,
			template: "{title}{year}",
			expected: "Harry Potter1997",
		},
		{
			name:     "empty template",
			data:     bookData,
			template: "",
			expected: "",
		},
		{
			name:     "empty placeholder",
			data:     bookData,
			template: "x{}y",
			expected: "xy",
		},
		{
			name:     "nil data renders placeholders empty",
			data:     nil,
			template: "Hello, {name}!",
			expected: "Hello, !",
		},
		{
			name:     "composite value stringified",
			data:     bookData,
			template: "tags: {tags}",
			expected: "tags: [fantasy magic]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, placeholder.Render(tt.data, tt.template))
		})
	}
}

func TestRenderStructData(t *testing.T) {
	t.Parallel()

	type Author struct {
		Name string
	}
	type Book struct {
		Title  string
		Author Author
	}

	data := Book{Title: "Dune", Author: Author{Name: "Frank Herbert"}}

	out := placeholder.Render(data, "{title} by {author.name}")
	assert.Equal(t, "Dune by Frank Herbert", out)
}
