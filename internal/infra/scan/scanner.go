// Package scan enumerates tool documents and builds the listing the
// index is rendered from.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"toolindex/internal/domain"
	"toolindex/internal/infra/htmlmeta"
)

type Scanner struct {
	logger *zap.Logger
}

func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		return &Scanner{logger: zap.NewNop()}
	}
	return &Scanner{logger: logger.Named("scan")}
}

// Options selects the directory to scan and the file names to skip.
type Options struct {
	Dir string
	// Exclude lists file names (not paths) skipped during discovery,
	// matched case-insensitively. The index and template files must be
	// in here or they would be cataloged as tools.
	Exclude []string
}

// Scan reads every tool document under opts.Dir and returns the
// listing in canonical order. Extraction is all-or-nothing: the first
// unreadable file or missing description aborts the scan, so a partial
// listing can never reach the renderer.
func (s *Scanner) Scan(ctx context.Context, opts Options) (domain.Listing, error) {
	const op = "scan"

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("read directory %s: %v", dir, err), err)
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[strings.ToLower(name)] = struct{}{}
	}

	var docs []domain.ToolDoc
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".html") {
			continue
		}
		if _, skip := excluded[strings.ToLower(name)]; skip {
			continue
		}

		doc, err := s.readTool(dir, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	listing := domain.NewListing(docs)
	s.logger.Debug("scan complete",
		zap.String("dir", dir),
		zap.Int("tools", len(listing)))
	return listing, nil
}

func (s *Scanner) readTool(dir, name string) (domain.ToolDoc, error) {
	const op = "scan"

	path := filepath.Join(dir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ToolDoc{}, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("read tool %s: %v", path, err), err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.ToolDoc{}, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("stat tool %s: %v", path, err), err)
	}

	meta, err := htmlmeta.Extract(content)
	if err != nil {
		return domain.ToolDoc{}, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("parse tool %s: %v", path, err), err)
	}

	title := meta.Title
	if title == "" {
		title = htmlmeta.TitleFromFileName(name)
	}
	if meta.Description == "" {
		return domain.ToolDoc{}, domain.E(
			domain.CodeMissingDescription,
			op,
			fmt.Sprintf("tool %q has no <meta name=\"description\"> content", name),
			domain.ErrMissingDescription,
		)
	}

	return domain.ToolDoc{
		FileName:    name,
		Title:       title,
		Description: meta.Description,
		ModTime:     info.ModTime(),
	}, nil
}
