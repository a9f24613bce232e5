// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-gdoc2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	// Find a user config path to suggest
	marker := filepath.Join(".config", "go-gdoc2html")
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDecode returns hints for documents that are not Docs API resources.
func ForDecode() string {
	return format("export the document with documents.get; .json inputs must hold the raw resource")
}

// ForUnsupportedElement returns hints for document constructs that have no
// HTML rendering.
func ForUnsupportedElement() string {
	return formatHints([]string{
		"replace drawings, equations and charts with images",
		"use only bullet lists and point-sized images",
	})
}

// ForDirective returns hints for malformed {{ }} and {: } directives.
func ForDirective() string {
	return format("directives look like {{ name key=\"value\" }} and {: .class #id }")
}

// ForBanner returns hints for a banner image left on a remote host.
func ForBanner() string {
	return format("insert the banner into the document itself and set --image-base-url")
}

// ForDate returns hints for unparseable dates and date formats.
func ForDate() string {
	return format(`dates accept "DD/MM/YYYY hh:mm:ss", "YYYY-MM-DD", "auto" or "auto:FORMAT"`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
