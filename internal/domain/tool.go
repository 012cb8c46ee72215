package domain

import (
	"sort"
	"strings"
	"time"
)

// ToolDoc is the metadata extracted from a single tool document.
type ToolDoc struct {
	FileName    string
	Title       string
	Description string
	ModTime     time.Time
}

// Link returns the relative link target for the tool. Tool documents
// live next to the index file, so the file name is the link.
func (d ToolDoc) Link() string {
	return d.FileName
}

// Listing is an ordered set of tool documents. Order is
// case-insensitive lexicographic by file name so that rendered output
// never depends on directory iteration order.
type Listing []ToolDoc

// NewListing copies docs into a Listing in canonical order.
func NewListing(docs []ToolDoc) Listing {
	out := make(Listing, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FileName) < strings.ToLower(out[j].FileName)
	})
	return out
}

// FileNames returns the ordered file names of the listing.
func (l Listing) FileNames() []string {
	if len(l) == 0 {
		return nil
	}
	names := make([]string, 0, len(l))
	for _, doc := range l {
		names = append(names, doc.FileName)
	}
	return names
}

func (l Listing) byName() map[string]ToolDoc {
	out := make(map[string]ToolDoc, len(l))
	for _, doc := range l {
		out[doc.FileName] = doc
	}
	return out
}
