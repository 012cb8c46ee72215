// Package htmlmeta extracts index metadata from tool documents using a
// real HTML parser, so extraction survives incidental formatting
// differences between hand-written tool files.
package htmlmeta

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Meta holds the fields the index generator reads from a tool document.
type Meta struct {
	Title       string
	Description string
}

// Extract parses content and returns the document title and the value
// of the description meta tag. Either field may be empty; the caller
// decides which absences are fatal. Parsing itself never fails on
// real-world input because x/net/html recovers the way browsers do.
func Extract(content []byte) (Meta, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return Meta{}, fmt.Errorf("parse html: %w", err)
	}

	var meta Meta
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if meta.Title == "" {
					meta.Title = collapseWhitespace(textContent(n))
				}
			case atom.Meta:
				if meta.Description == "" && strings.EqualFold(attr(n, "name"), "description") {
					meta.Description = strings.TrimSpace(attr(n, "content"))
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return meta, nil
}

// TitleFromFileName derives a display title from a tool file name:
// the extension is dropped, dashes and underscores become spaces, and
// each word is title-cased. "unit-converter.html" -> "Unit Converter".
func TitleFromFileName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return cases.Title(language.English).String(stem)
}

func textContent(n *html.Node) string {
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

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
