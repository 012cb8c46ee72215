package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"toolindex/internal/domain"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>Tools</title></head>
<body>
    <ul class="tool-list">
<!-- TOOLS_LIST -->
    </ul>
</body>
</html>
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultTemplateFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplate_Valid(t *testing.T) {
	path := writeTemplate(t, testTemplate)

	tmpl, err := NewRenderer(nil).LoadTemplate(path)
	require.NoError(t, err)
	require.Contains(t, tmpl, domain.PlaceholderToken)
}

func TestLoadTemplate_PlaceholderMissing(t *testing.T) {
	path := writeTemplate(t, "<html><body><ul></ul></body></html>")

	_, err := NewRenderer(nil).LoadTemplate(path)
	require.ErrorIs(t, err, domain.ErrPlaceholderMissing)
}

func TestLoadTemplate_PlaceholderDuplicated(t *testing.T) {
	path := writeTemplate(t, testTemplate+domain.PlaceholderToken)

	_, err := NewRenderer(nil).LoadTemplate(path)
	require.ErrorIs(t, err, domain.ErrPlaceholderDuplicated)
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := NewRenderer(nil).LoadTemplate(filepath.Join(t.TempDir(), "gone.html"))
	require.Error(t, err)

	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, domain.CodeReadFailed, domainErr.Code)
}

func TestRender_EntriesInOrder(t *testing.T) {
	listing := domain.NewListing([]domain.ToolDoc{
		{FileName: "beta.html", Title: "Beta", Description: "Does beta things"},
		{FileName: "alpha.html", Title: "Alpha", Description: "Does alpha things"},
	})

	out, err := NewRenderer(nil).Render(testTemplate, listing)
	require.NoError(t, err)
	require.NotContains(t, out, domain.PlaceholderToken)
	require.Contains(t, out, `href="alpha.html"`)
	require.Contains(t, out, `<span class="tool-title">Beta</span>`)
	require.Contains(t, out, "<p>Does beta things</p>")
	require.Less(t, strings.Index(out, "alpha.html"), strings.Index(out, "beta.html"))
}

func TestRender_EscapesMetadata(t *testing.T) {
	listing := domain.Listing{{
		FileName:    "snippets.html",
		Title:       `<b>Snippets & "things"</b>`,
		Description: "copy <code> fast",
	}}

	out, err := NewRenderer(nil).Render(testTemplate, listing)
	require.NoError(t, err)
	require.NotContains(t, out, "<b>")
	require.Contains(t, out, "&lt;b&gt;")
	require.Contains(t, out, "&lt;code&gt;")
}

func TestRender_Deterministic(t *testing.T) {
	listing := domain.NewListing([]domain.ToolDoc{
		{FileName: "alpha.html", Title: "Alpha", Description: "Does alpha things"},
	})

	r := NewRenderer(nil)
	first, err := r.Render(testTemplate, listing)
	require.NoError(t, err)
	second, err := r.Render(testTemplate, listing)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRender_EmptyListing(t *testing.T) {
	out, err := NewRenderer(nil).Render(testTemplate, nil)
	require.NoError(t, err)
	require.NotContains(t, out, domain.PlaceholderToken)
}

func TestParseEntries_RecoversListing(t *testing.T) {
	listing := domain.NewListing([]domain.ToolDoc{
		{FileName: "alpha.html", Title: "Alpha", Description: "Does alpha things"},
		{FileName: "beta.html", Title: "Beta", Description: "Does beta things"},
	})

	out, err := NewRenderer(nil).Render(testTemplate, listing)
	require.NoError(t, err)

	recovered, err := ParseEntries([]byte(out))
	require.NoError(t, err)
	require.Equal(t, listing.FileNames(), recovered.FileNames())
	require.Equal(t, "Alpha", recovered[0].Title)
	require.Equal(t, "Does beta things", recovered[1].Description)
}

func TestParseEntries_NoEntries(t *testing.T) {
	recovered, err := ParseEntries([]byte("<html><body><ul></ul></body></html>"))
	require.NoError(t, err)
	require.Empty(t, recovered)
}
