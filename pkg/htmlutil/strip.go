// ABOUTME: HTML stripping used to clean article descriptions
// ABOUTME: Extracts text content, decodes entities and collapses whitespace

package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes HTML markup from s and returns the decoded text content with
// whitespace collapsed. Script and style bodies are dropped entirely.
// Idempotent on already-clean text: Strip(Strip(s)) == Strip(s).
func Strip(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(b.String())
}

// collapseWhitespace trims s and squeezes runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
