// Package render turns a tool listing into the index page. Rendering
// is pure: the same template and listing always produce the same
// bytes.
package render

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"go.uber.org/zap"

	"toolindex/internal/domain"
)

var entryTemplate = template.Must(template.New("entry").Parse(
	`        <li class="tool-item">
            <a href="{{.Link}}" class="tool-link">
                <span class="tool-title">{{.Title}}</span>
            </a><p>{{.Description}}</p>
        </li>`))

type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		return &Renderer{logger: zap.NewNop()}
	}
	return &Renderer{logger: logger.Named("render")}
}

// LoadTemplate reads the template file and validates that it carries
// the placeholder exactly once.
func (r *Renderer) LoadTemplate(path string) (string, error) {
	const op = "render"

	content, err := os.ReadFile(path)
	if err != nil {
		return "", domain.E(domain.CodeReadFailed, op, fmt.Sprintf("read template %s: %v", path, err), err)
	}

	tmpl := string(content)
	switch count := strings.Count(tmpl, domain.PlaceholderToken); {
	case count == 0:
		return "", domain.E(domain.CodeTemplateInvalid, op,
			fmt.Sprintf("template %s does not contain %s", path, domain.PlaceholderToken),
			domain.ErrPlaceholderMissing)
	case count > 1:
		return "", domain.E(domain.CodeTemplateInvalid, op,
			fmt.Sprintf("template %s contains %s %d times, want exactly one", path, domain.PlaceholderToken, count),
			domain.ErrPlaceholderDuplicated)
	}
	return tmpl, nil
}

// Render substitutes the rendered entry list for the placeholder.
// Titles and descriptions are HTML-escaped; the template around the
// placeholder passes through untouched.
func (r *Renderer) Render(tmpl string, listing domain.Listing) (string, error) {
	const op = "render"

	items := make([]string, 0, len(listing))
	for _, doc := range listing {
		var sb strings.Builder
		if err := entryTemplate.Execute(&sb, doc); err != nil {
			return "", domain.E(domain.CodeInternal, op, fmt.Sprintf("render entry %s: %v", doc.FileName, err), err)
		}
		items = append(items, sb.String())
	}

	r.logger.Debug("rendered entry list", zap.Int("entries", len(items)))
	return strings.Replace(tmpl, domain.PlaceholderToken, strings.Join(items, "\n"), 1), nil
}
