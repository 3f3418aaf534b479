package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/mdreader/internal/doctree"
)

func TestRenderer_HeadingsCarryIDs(t *testing.T) {
	r := NewRenderer(RenderOptions{})
	out, err := r.Render([]byte("# Title\n\nIntro text.\n\n## Section *A*\n"))
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, `<h2 id="section-a">Section <em>A</em></h2>`)
	assert.Contains(t, out, "<p>Intro text.</p>")
}

func TestRenderer_PipeTables(t *testing.T) {
	r := NewRenderer(RenderOptions{})
	out, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRenderer_RawHTMLAllowed(t *testing.T) {
	r := NewRenderer(RenderOptions{})
	out, err := r.Render([]byte("<div class=\"note\">hi</div>\n"))
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="note">hi</div>`)
}

func TestRenderer_HardWraps(t *testing.T) {
	soft, err := NewRenderer(RenderOptions{}).Render([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.NotContains(t, soft, "<br")

	hard, err := NewRenderer(RenderOptions{HardWraps: true}).Render([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Contains(t, hard, "<br")
}

// Render then extract, the way a document load does.
func TestRenderAndExtract_HeadingHierarchy(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

##### Deep

## Section B

Section B content.
`
	body, err := NewRenderer(RenderOptions{}).Render([]byte(input))
	require.NoError(t, err)

	out, headings := ExtractHeadings(body)
	require.Len(t, headings, 4)
	assert.Equal(t, "Title", headings[0].Text)
	assert.Equal(t, 5, headings[2].Level)
	assert.Contains(t, out, `<h5 id="heading3">Deep</h5>`)

	tree, err := doctree.BuildOutline(headings)
	require.NoError(t, err)

	root := tree.Outline()
	require.Len(t, root.Children, 1)
	title := root.Children[0]
	require.Len(t, title.Children, 2)
	assert.Equal(t, "Section A", title.Children[0].Label)
	assert.Equal(t, "Section B", title.Children[1].Label)
	require.Len(t, title.Children[0].Children, 1)
	assert.Equal(t, "Deep", title.Children[0].Children[0].Label)
}

func TestRenderAndExtract_NoHeadings(t *testing.T) {
	body, err := NewRenderer(RenderOptions{}).Render([]byte("Just some plain text.\n\nAnother paragraph here."))
	require.NoError(t, err)

	out, headings := ExtractHeadings(body)
	assert.Equal(t, body, out)
	assert.Empty(t, headings)
	assert.True(t, strings.Contains(out, "Another paragraph here."))
}

func TestRenderer_Emoji(t *testing.T) {
	plain, err := NewRenderer(RenderOptions{}).Render([]byte("hi :smile:\n"))
	require.NoError(t, err)
	assert.Contains(t, plain, ":smile:")

	withEmoji, err := NewRenderer(RenderOptions{Emoji: true}).Render([]byte("hi :smile:\n"))
	require.NoError(t, err)
	assert.NotContains(t, withEmoji, ":smile:")
}
