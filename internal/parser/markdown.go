package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender is returned when markdown cannot be converted to HTML.
var ErrRender = errors.New("render markdown")

// RenderOptions tweaks the markdown pipeline.
type RenderOptions struct {
	Emoji     bool // Replace :shortcodes: with emoji
	HardWraps bool // Render soft line breaks as <br>
}

// Renderer converts markdown to HTML using goldmark.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a goldmark pipeline with GitHub-flavoured tables, task
// lists, footnotes and definition lists. Headings always get an id attribute
// so ExtractHeadings has something to rewrite.
func NewRenderer(opts RenderOptions) *Renderer {
	exts := []goldmark.Extender{
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
		extension.Typographer,
	}
	if opts.Emoji {
		exts = append(exts, emoji.Emoji)
	}

	htmlOpts := []renderer.Option{html.WithUnsafe()}
	if opts.HardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(gparser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(htmlOpts...),
	)
	return &Renderer{md: md}
}

// Render converts markdown source to an HTML fragment.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
