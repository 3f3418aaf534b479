package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dgallion1/mdreader/internal/doctree"
)

// AnchorPrefix is prepended to the running heading counter to form anchor ids.
const AnchorPrefix = "heading"

var (
	// openHeading matches an opening <h1>..<h6> tag, with or without attributes.
	openHeading = regexp.MustCompile(`(?i)<h([1-6])(\s[^>]*)?>`)
	// idAttr matches the id attribute inside an opening tag.
	idAttr = regexp.MustCompile(`(\s)id="[^"]*"`)
)

// ExtractHeadings rewrites every heading line of rendered HTML so the heading
// carries a unique anchor id (heading1, heading2, ...) and returns the
// rewritten HTML together with the headings in document order.
//
// Lines are processed independently; only the first heading tag on a line is
// considered. Lines without a heading are passed through unchanged.
func ExtractHeadings(htmlText string) (string, []doctree.Heading) {
	lines := strings.Split(htmlText, "\n")
	var headings []doctree.Heading

	for i, line := range lines {
		loc := openHeading.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		id := fmt.Sprintf("%s%d", AnchorPrefix, len(headings)+1)
		level := int(line[loc[2]] - '0')
		tag := line[loc[0]:loc[1]]
		rest := line[loc[1]:]

		lines[i] = line[:loc[0]] + setID(tag, id) + rest
		headings = append(headings, doctree.Heading{
			Level: level,
			Text:  headingText(line[loc[0]:], level),
			ID:    id,
		})
	}

	if len(headings) == 0 {
		return htmlText, nil
	}
	return strings.Join(lines, "\n"), headings
}

// setID replaces the value of the first id attribute in an opening tag, or
// adds one when the tag has none.
func setID(tag, id string) string {
	if loc := idAttr.FindStringSubmatchIndex(tag); loc != nil {
		return tag[:loc[0]] + tag[loc[2]:loc[3]] + `id="` + id + `"` + tag[loc[1]:]
	}
	// "<hN" is always three bytes.
	return tag[:3] + ` id="` + id + `"` + tag[3:]
}

// headingText returns the text content of the heading element starting at
// fragment, up to its closing tag. Inline markup is dropped and entities are
// decoded. Without a closing tag on the line the text runs to the end of it.
func headingText(fragment string, level int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return naiveText(fragment)
	}
	sel := doc.Find(fmt.Sprintf("h%d", level)).First()
	if sel.Length() == 0 {
		return naiveText(fragment)
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// naiveText returns the content between the first '>' and the next '<'.
func naiveText(fragment string) string {
	start := strings.IndexByte(fragment, '>')
	if start < 0 {
		return ""
	}
	text := fragment[start+1:]
	if end := strings.IndexByte(text, '<'); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}
