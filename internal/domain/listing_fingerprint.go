package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

type listingFingerprintEntry struct {
	FileName    string `json:"fileName"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListingFingerprint returns a stable content hash of the listing.
// Mod times are excluded: two listings that render identically must
// fingerprint identically.
func ListingFingerprint(l Listing) (string, error) {
	entries := make([]listingFingerprintEntry, 0, len(l))
	for _, doc := range l {
		entries = append(entries, listingFingerprintEntry{
			FileName:    doc.FileName,
			Title:       doc.Title,
			Description: doc.Description,
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal listing fingerprint: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
