package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// DefaultStylesheet is used when no stylesheet is configured.
const DefaultStylesheet = "body{font-family:Helvetica,Arial}" +
	"table, th, td {border-collapse: collapse; border: 1px solid black;padding:.5em;}"

// ScrollScript defines the ScrollTo helper the outline links call.
const ScrollScript = "<script>function ScrollTo(id){document.getElementById(id).scrollIntoView();}</script>"

// BuildPage wraps a rendered markdown body into a displayable page. baseHref
// is used to resolve relative links and images in the document.
func BuildPage(body, baseHref, stylesheet string) string {
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}

	var sb strings.Builder
	sb.Grow(len(body) + len(stylesheet) + 256)
	sb.WriteString(`<base href="`)
	sb.WriteString(html.EscapeString(baseHref))
	sb.WriteString("\">\n<!DOCTYPE html>\n<style>")
	sb.WriteString(stylesheet)
	sb.WriteString("</style>\n")
	sb.WriteString(ScrollScript)
	sb.WriteString("\n")
	sb.WriteString(body)
	return sb.String()
}
