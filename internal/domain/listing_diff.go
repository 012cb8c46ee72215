package domain

import "sort"

// ListingDiff summarizes changes between two tool listings.
type ListingDiff struct {
	Added   []string
	Removed []string
	Changed []string
}

// IsEmpty reports whether the diff contains any changes.
func (d ListingDiff) IsEmpty() bool {
	return len(d.Added) == 0 &&
		len(d.Removed) == 0 &&
		len(d.Changed) == 0
}

// DiffListings computes a diff between two listings keyed by file name.
// A tool counts as changed when its title or description differ; the
// file system mod time is ignored because it never reaches the
// rendered index.
func DiffListings(prev Listing, next Listing) ListingDiff {
	diff := ListingDiff{}

	prevDocs := prev.byName()
	nextDocs := next.byName()

	for name, prevDoc := range prevDocs {
		nextDoc, ok := nextDocs[name]
		if !ok {
			diff.Removed = append(diff.Removed, name)
			continue
		}
		if prevDoc.Title != nextDoc.Title || prevDoc.Description != nextDoc.Description {
			diff.Changed = append(diff.Changed, name)
		}
	}
	for name := range nextDocs {
		if _, ok := prevDocs[name]; !ok {
			diff.Added = append(diff.Added, name)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Changed)

	return diff
}
