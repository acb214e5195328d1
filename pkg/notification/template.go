package notification

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/appkit-dev/appkit/pkg/placeholder"
)

// Template is a parsed notification template: frontmatter metadata plus a
// markdown body with {path} placeholders.
type Template struct {
	// Subject line template; may contain placeholders.
	Subject string

	// Channels named by the frontmatter. Empty means every registered
	// channel.
	Channels []string

	// Metadata holds any extra frontmatter keys.
	Metadata map[string]any

	// Body is the raw markdown body.
	Body string
}

type frontmatter struct {
	Subject  string         `yaml:"subject"`
	Channels []string       `yaml:"channels"`
	Rest     map[string]any `yaml:",inline"`
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate splits template content into YAML frontmatter and markdown
// body. Content without a leading "---" is treated as body-only.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimPrefix(content, frontmatterDelimiter)
	rest = bytes.TrimLeft(rest, "\r\n")

	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFrontmatter, err)
	}

	body := rest[end+len(frontmatterDelimiter):]
	body = bytes.TrimLeft(body, "\r\n")

	meta := fm.Rest
	if meta == nil {
		meta = map[string]any{}
	}

	return &Template{
		Subject:  fm.Subject,
		Channels: fm.Channels,
		Metadata: meta,
		Body:     string(body),
	}, nil
}

// Message is the rendered output delivered to a channel.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Render substitutes placeholders in subject and body against data and
// converts the body to HTML.
func (t *Template) Render(md goldmark.Markdown, data any) (Message, error) {
	text := placeholder.Render(data, t.Body)

	var html bytes.Buffer
	if err := md.Convert([]byte(text), &html); err != nil {
		return Message{}, fmt.Errorf("notification: converting markdown: %w", err)
	}

	return Message{
		Subject: placeholder.Render(data, t.Subject),
		Text:    text,
		HTML:    html.String(),
	}, nil
}

func loadTemplate(fsys fs.FS, name string) (*Template, error) {
	content, err := fs.ReadFile(fsys, name+".md")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return ParseTemplate(content)
}
