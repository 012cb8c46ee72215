package domain

import "time"

const (
	DefaultIndexFileName    = "index.html"
	DefaultTemplateFileName = "index.template.html"
	DefaultConfigFileName   = "toolindex.yaml"

	// PlaceholderToken marks where the rendered entry list is injected.
	// The template must contain it exactly once.
	PlaceholderToken = "<!-- TOOLS_LIST -->"

	DefaultWatchDebounce = 200 * time.Millisecond
)
