// Package markdown renders post content to HTML as a templ component.
package markdown

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const (
	extensions  = parser.CommonExtensions | parser.AutoHeadingIDs
	renderFlags = html.CommonFlags | html.HrefTargetBlank | html.Safelink | html.SkipHTML
)

// Heading is one entry of a post's table of contents.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderMarkdown(&buf, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of md to buf. Raw HTML in
// md is dropped and only safe link protocols are kept.
func RenderMarkdown(buf *bytes.Buffer, md string) {
	doc := parse(md)
	renderer := html.NewRenderer(html.RendererOptions{Flags: renderFlags})
	buf.Write(gomarkdown.Render(doc, renderer))
}

// Headings returns the level 2 and 3 headings of md in document order.
func Headings(md string) []Heading {
	var out []Heading
	ast.WalkFunc(parse(md), func(node ast.Node, entering bool) ast.WalkStatus {
		h, ok := node.(*ast.Heading)
		if !ok || !entering || h.Level < 2 || h.Level > 3 {
			return ast.GoToNext
		}
		out = append(out, Heading{Level: h.Level, ID: h.HeadingID, Text: textOf(h)})
		return ast.SkipChildren
	})
	return out
}

// parse builds a fresh parser per call; gomarkdown parsers are single use.
func parse(md string) ast.Node {
	p := parser.NewWithExtensions(extensions)
	return p.Parse([]byte(strings.ReplaceAll(md, "\r\n", "\n")))
}

func textOf(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Literal)
		case *ast.Code:
			b.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
