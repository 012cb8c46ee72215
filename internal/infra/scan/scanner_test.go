package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toolindex/internal/domain"
)

func writeTool(t *testing.T, dir, name, title, description string) {
	t.Helper()
	content := "<!DOCTYPE html>\n<html><head>"
	if description != "" {
		content += `<meta name="description" content="` + description + `">`
	}
	if title != "" {
		content += "<title>" + title + "</title>"
	}
	content += "</head><body></body></html>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScan_BuildsOrderedListing(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "beta.html", "Beta", "Does beta things")
	writeTool(t, dir, "alpha.html", "Alpha", "Does alpha things")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o755))

	listing, err := NewScanner(zap.NewNop()).Scan(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha.html", "beta.html"}, listing.FileNames())
	require.Equal(t, "Alpha", listing[0].Title)
	require.Equal(t, "Does beta things", listing[1].Description)
}

func TestScan_ExcludesNamesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "alpha.html", "Alpha", "Does alpha things")
	writeTool(t, dir, "Index.html", "Index", "the generated index")

	listing, err := NewScanner(nil).Scan(context.Background(), Options{
		Dir:     dir,
		Exclude: []string{"index.html"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha.html"}, listing.FileNames())
}

func TestScan_MissingDescriptionNamesFile(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "alpha.html", "Alpha", "Does alpha things")
	writeTool(t, dir, "broken.html", "Broken", "")

	_, err := NewScanner(nil).Scan(context.Background(), Options{Dir: dir})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMissingDescription)
	require.Contains(t, err.Error(), "broken.html")

	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeMissingDescription, code)
}

func TestScan_EmptyDescriptionIsMissing(t *testing.T) {
	dir := t.TempDir()
	content := `<html><head><meta name="description" content="   "><title>T</title></head></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank.html"), []byte(content), 0o644))

	_, err := NewScanner(nil).Scan(context.Background(), Options{Dir: dir})
	require.ErrorIs(t, err, domain.ErrMissingDescription)
	require.Contains(t, err.Error(), "blank.html")
}

func TestScan_TitleFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "unit-converter.html", "", "Converts units")

	listing, err := NewScanner(nil).Scan(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	require.Equal(t, "Unit Converter", listing[0].Title)
}

func TestScan_MissingDirectory(t *testing.T) {
	_, err := NewScanner(nil).Scan(context.Background(), Options{Dir: filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, domain.CodeReadFailed, domainErr.Code)
}

func TestScan_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "alpha.html", "Alpha", "Does alpha things")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(nil).Scan(ctx, Options{Dir: dir})
	require.ErrorIs(t, err, context.Canceled)
}
