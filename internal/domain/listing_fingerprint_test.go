package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListingFingerprint_Stable(t *testing.T) {
	listing := NewListing([]ToolDoc{
		{FileName: "beta.html", Title: "Beta", Description: "Does beta things"},
		{FileName: "alpha.html", Title: "Alpha", Description: "Does alpha things"},
	})

	first, err := ListingFingerprint(listing)
	require.NoError(t, err)
	second, err := ListingFingerprint(listing)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 64)
}

func TestListingFingerprint_IgnoresModTime(t *testing.T) {
	base := ToolDoc{FileName: "alpha.html", Title: "Alpha", Description: "d"}
	touched := base
	touched.ModTime = time.Now()

	a, err := ListingFingerprint(Listing{base})
	require.NoError(t, err)
	b, err := ListingFingerprint(Listing{touched})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestListingFingerprint_ContentSensitive(t *testing.T) {
	a, err := ListingFingerprint(Listing{{FileName: "alpha.html", Title: "Alpha", Description: "one"}})
	require.NoError(t, err)
	b, err := ListingFingerprint(Listing{{FileName: "alpha.html", Title: "Alpha", Description: "two"}})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
