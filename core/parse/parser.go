// ABOUTME: Hand-rolled RSS 2.0 / Atom detection and normalization parser
// ABOUTME: Turns raw feed XML into the canonical article list the pipeline emits

package parse

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/pkg/htmlutil"
)

const (
	maxItems       = 20
	maxDescription = 300
)

// node is a generic XML element tree, enough DOM to mirror selector-style
// lookups over arbitrary feed documents.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// find returns the first descendant (or the node itself) with the given
// local name, in document order.
func (n *node) find(name string) *node {
	if n.XMLName.Local == name {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// findFirst returns the first descendant matching any of the given local
// names, preferring document order over name order.
func (n *node) findFirst(names ...string) *node {
	for i := range n.Children {
		c := &n.Children[i]
		for _, name := range names {
			if c.XMLName.Local == name {
				return c
			}
		}
		if found := c.findFirst(names...); found != nil {
			return found
		}
	}
	for _, name := range names {
		if n.XMLName.Local == name {
			return n
		}
	}
	return nil
}

// findAll collects every descendant with the given local name in document order.
func (n *node) findAll(name string) []*node {
	var out []*node
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == name {
			out = append(out, c)
		}
		out = append(out, c.findAll(name)...)
	}
	return out
}

// text returns the node's trimmed character data, or "" for a nil node.
func (n *node) text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// attr returns the value of the named attribute, or "".
func (n *node) attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Parse detects the feed structure of xmlText and normalizes it. RSS 2.0 is
// tried first (channel/item, optionally under an rss root); when no channel
// or zero items are found, Atom (feed/entry) is tried instead. Malformed XML
// fails before any structural detection.
func Parse(xmlText, sourceURL string) (*domain.FeedData, error) {
	var root node
	if err := xml.Unmarshal([]byte(xmlText), &root); err != nil {
		return nil, &errors.ParseError{Reason: "invalid XML"}
	}

	channel := root.find("channel")
	var items []*node
	if channel != nil {
		items = channel.findAll("item")
	}

	isAtom := false
	if channel == nil || len(items) == 0 {
		channel = root.find("feed")
		if channel != nil {
			items = channel.findAll("entry")
		}
		isAtom = true
	}

	if channel == nil {
		return nil, &errors.ParseError{Reason: "no valid RSS or Atom feed structure"}
	}

	if len(items) > maxItems {
		items = items[:maxItems]
	}

	articles := make([]domain.Article, 0, len(items))
	for i, item := range items {
		articles = append(articles, normalizeItem(item, sourceURL, i, isAtom))
	}

	if len(articles) == 0 {
		return nil, &errors.ParseError{Reason: "no articles found"}
	}

	return &domain.FeedData{
		Status: "ok",
		Feed:   feedMeta(channel, sourceURL),
		Items:  articles,
	}, nil
}

// normalizeItem maps one item/entry element onto an Article, substituting
// synthetic values so that title and link are never empty.
func normalizeItem(item *node, sourceURL string, index int, isAtom bool) domain.Article {
	title := item.find("title").text()
	if title == "" {
		title = "Untitled Article"
	}

	var link string
	linkNode := item.find("link")
	if isAtom {
		link = linkNode.attr("href")
	} else {
		link = linkNode.text()
	}
	if link == "" {
		link = fmt.Sprintf("%s#article-%d", sourceURL, index)
	}

	raw := firstNonEmptyText(item, "description", "summary", "content")
	description := htmlutil.Truncate(htmlutil.Strip(raw), maxDescription)

	pubDate := item.findFirst("pubDate", "published", "updated").text()
	if pubDate == "" {
		pubDate = time.Now().Format(time.RFC3339)
	}

	guid := item.findFirst("guid", "id").text()
	if guid == "" {
		guid = link
	}

	return domain.Article{
		Title:       title,
		Link:        link,
		Description: description,
		Content:     raw,
		PubDate:     pubDate,
		GUID:        guid,
	}
}

// feedMeta extracts the feed-level header, falling back through the link
// element's text, its href attribute, and finally the source URL itself.
func feedMeta(channel *node, sourceURL string) domain.FeedMeta {
	title := channel.find("title").text()
	if title == "" {
		title = "Unknown Feed"
	}

	description := channel.findFirst("description", "subtitle").text()

	linkNode := channel.find("link")
	link := linkNode.text()
	if link == "" {
		link = linkNode.attr("href")
	}
	if link == "" {
		link = sourceURL
	}

	return domain.FeedMeta{
		Title:       title,
		Link:        link,
		Description: description,
	}
}

// firstNonEmptyText returns the text of the first named child that has any,
// checking names in preference order.
func firstNonEmptyText(item *node, names ...string) string {
	for _, name := range names {
		if text := item.find(name).text(); text != "" {
			return text
		}
	}
	return ""
}
