package note

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sanitize returns input as markup that renders as the literal text.
//
// The text is set as the content of a detached element and its inner markup is
// serialized back, so escaping is done by the html serializer itself. Line feeds
// become <br> elements. Applying it twice escapes twice.
func Sanitize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	element := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for i, line := range strings.Split(input, "\n") {
		if i > 0 {
			element.AppendChild(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
		}
		if line != "" {
			element.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}

	var b strings.Builder
	for c := element.FirstChild; c != nil; c = c.NextSibling {
		// only fails on writer errors, strings.Builder has none
		_ = html.Render(&b, c)
	}
	return b.String()
}
