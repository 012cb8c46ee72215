package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffListings_SetChanges(t *testing.T) {
	alpha := ToolDoc{FileName: "alpha.html", Title: "Alpha", Description: "Does alpha things"}
	beta := ToolDoc{FileName: "beta.html", Title: "Beta", Description: "Does beta things"}
	betaEdited := ToolDoc{FileName: "beta.html", Title: "Beta", Description: "Does better beta things"}
	gamma := ToolDoc{FileName: "gamma.html", Title: "Gamma", Description: "Does gamma things"}

	prev := NewListing([]ToolDoc{alpha, beta})
	next := NewListing([]ToolDoc{betaEdited, gamma})

	diff := DiffListings(prev, next)

	require.Equal(t, []string{"gamma.html"}, diff.Added)
	require.Equal(t, []string{"alpha.html"}, diff.Removed)
	require.Equal(t, []string{"beta.html"}, diff.Changed)
	require.False(t, diff.IsEmpty())
}

func TestDiffListings_IgnoresModTime(t *testing.T) {
	prev := NewListing([]ToolDoc{{FileName: "alpha.html", Title: "Alpha", Description: "d"}})
	next := NewListing([]ToolDoc{{FileName: "alpha.html", Title: "Alpha", Description: "d"}})
	next[0].ModTime = next[0].ModTime.AddDate(0, 0, 1)

	require.True(t, DiffListings(prev, next).IsEmpty())
}

func TestDiffListings_Empty(t *testing.T) {
	require.True(t, DiffListings(nil, nil).IsEmpty())
}
