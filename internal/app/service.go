// Package app wires the scanner and renderer into the generate, check,
// and watch operations exposed by the CLI.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"toolindex/internal/domain"
	"toolindex/internal/infra/config"
	"toolindex/internal/infra/render"
	"toolindex/internal/infra/scan"
)

// IndexService regenerates and verifies the index page for one tools
// directory. It holds no mutable state; every operation re-reads the
// file system so repeated calls observe edits.
type IndexService struct {
	logger   *zap.Logger
	cfg      config.Config
	scanner  *scan.Scanner
	renderer *render.Renderer
}

func NewIndexService(cfg config.Config, logger *zap.Logger) *IndexService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndexService{
		logger:   logger.Named("index"),
		cfg:      cfg,
		scanner:  scan.NewScanner(logger),
		renderer: render.NewRenderer(logger),
	}
}

func (s *IndexService) Config() config.Config {
	return s.cfg
}

// IndexPath returns the absolute location of the generated index file.
func (s *IndexService) IndexPath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.IndexFile)
}

func (s *IndexService) templatePath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.TemplateFile)
}

// BuildListing scans the tools directory and returns the canonical
// listing. Fails without partial results on unreadable files or
// missing descriptions.
func (s *IndexService) BuildListing(ctx context.Context) (domain.Listing, error) {
	return s.scanner.Scan(ctx, scan.Options{
		Dir:     s.cfg.Dir,
		Exclude: s.cfg.ExcludedNames(),
	})
}

// RenderIndex produces the full index content in memory.
func (s *IndexService) RenderIndex(ctx context.Context) (string, domain.Listing, error) {
	listing, err := s.BuildListing(ctx)
	if err != nil {
		return "", nil, err
	}
	tmpl, err := s.renderer.LoadTemplate(s.templatePath())
	if err != nil {
		return "", nil, err
	}
	content, err := s.renderer.Render(tmpl, listing)
	if err != nil {
		return "", nil, err
	}
	return content, listing, nil
}

// GenerateResult reports what a successful write produced.
type GenerateResult struct {
	Path        string
	ToolCount   int
	Fingerprint string
}

// Generate renders the index and writes it unconditionally. Nothing is
// written when scanning or rendering fails.
func (s *IndexService) Generate(ctx context.Context) (GenerateResult, error) {
	const op = "generate"

	content, listing, err := s.RenderIndex(ctx)
	if err != nil {
		return GenerateResult{}, err
	}

	path := s.IndexPath()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return GenerateResult{}, domain.E(domain.CodeWriteFailed, op, fmt.Sprintf("write index %s: %v", path, err), err)
	}

	fingerprint, err := domain.ListingFingerprint(listing)
	if err != nil {
		return GenerateResult{}, domain.E(domain.CodeInternal, op, "", err)
	}

	s.logger.Info("index generated",
		zap.String("path", path),
		zap.Int("tools", len(listing)),
		zap.String("fingerprint", fingerprint))
	return GenerateResult{
		Path:        path,
		ToolCount:   len(listing),
		Fingerprint: fingerprint,
	}, nil
}

// CheckResult reports the outcome of a drift check. Drift is a normal
// outcome, not an error: callers map it to a dedicated exit code.
type CheckResult struct {
	UpToDate     bool
	IndexMissing bool
	Diff         domain.ListingDiff
}

// Summary renders a human-readable account of the drift.
func (r CheckResult) Summary(indexFile string) string {
	if r.UpToDate {
		return fmt.Sprintf("%s is up to date.", indexFile)
	}
	if r.IndexMissing {
		return fmt.Sprintf("%s does not exist; run generate.", indexFile)
	}

	var sb bytes.Buffer
	fmt.Fprintf(&sb, "%s is out of date.", indexFile)
	for _, name := range r.Diff.Added {
		fmt.Fprintf(&sb, "\n  added:   %s", name)
	}
	for _, name := range r.Diff.Removed {
		fmt.Fprintf(&sb, "\n  removed: %s", name)
	}
	for _, name := range r.Diff.Changed {
		fmt.Fprintf(&sb, "\n  changed: %s", name)
	}
	if r.Diff.IsEmpty() {
		sb.WriteString("\n  markup differs from the current template output")
	}
	return sb.String()
}

// Check renders the index in memory and byte-compares it against the
// committed file without writing. On mismatch the committed entry list
// is parsed back out to summarize drift per tool.
func (s *IndexService) Check(ctx context.Context) (CheckResult, error) {
	const op = "check"

	content, listing, err := s.RenderIndex(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	path := s.IndexPath()
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("index missing", zap.String("path", path))
			return CheckResult{IndexMissing: true}, nil
		}
		return CheckResult{}, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("read index %s: %v", path, err), err)
	}

	if bytes.Equal(existing, []byte(content)) {
		return CheckResult{UpToDate: true}, nil
	}

	committed, err := render.ParseEntries(existing)
	if err != nil {
		return CheckResult{}, err
	}
	diff := domain.DiffListings(committed, listing)

	s.logger.Warn("index drift detected",
		zap.String("path", path),
		zap.Strings("added", diff.Added),
		zap.Strings("removed", diff.Removed),
		zap.Strings("changed", diff.Changed))
	return CheckResult{Diff: diff}, nil
}
