package skills

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const todoMarker = "TODO"

// Heading is a markdown heading found in the SKILL.md body
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
}

// Outline summarises the body of a SKILL.md: its headings and how many TODO
// markers are still left from the template.
type Outline struct {
	Headings []Heading `json:"headings" yaml:"headings"`
	TODOs    int       `json:"todos" yaml:"todos"`
}

// BuildOutline parses the markdown body that follows the header block. When
// the content has no well-formed header the whole content is treated as body.
func BuildOutline(content string) Outline {
	body := content
	if _, b, err := ExtractHeader(content); err == nil {
		body = b
	}

	src := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	outline := Outline{Headings: []Heading{}}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			outline.Headings = append(outline.Headings, Heading{
				Level: h.Level,
				Title: strings.TrimSpace(inlineText(h, src)),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	outline.TODOs = strings.Count(body, todoMarker)

	return outline
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(inlineText(c, src))
		}
	}
	return sb.String()
}
