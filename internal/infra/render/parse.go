package render

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"toolindex/internal/domain"
)

// ParseEntries recovers the tool listing from previously rendered
// index content. Check mode uses it to explain drift at the tool level
// instead of dumping a byte diff of generated markup.
func ParseEntries(content []byte) (domain.Listing, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, domain.E(domain.CodeInternal, "render", fmt.Sprintf("parse index: %v", err), err)
	}

	var docs []domain.ToolDoc
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Li && hasClass(n, "tool-item") {
			if entry, ok := entryFromItem(n); ok {
				docs = append(docs, entry)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return domain.NewListing(docs), nil
}

func entryFromItem(item *html.Node) (domain.ToolDoc, bool) {
	var entry domain.ToolDoc
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.A:
				if entry.FileName == "" && hasClass(n, "tool-link") {
					entry.FileName = nodeAttr(n, "href")
				}
			case atom.Span:
				if entry.Title == "" && hasClass(n, "tool-title") {
					entry.Title = strings.TrimSpace(nodeText(n))
				}
			case atom.P:
				if entry.Description == "" {
					entry.Description = strings.TrimSpace(nodeText(n))
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(item)

	return entry, entry.FileName != ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(nodeAttr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
