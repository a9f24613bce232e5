package main

import (
	"errors"
	"os"

	gdoc2html "github.com/alnah/go-gdoc2html"
	"github.com/alnah/go-gdoc2html/internal/config"
	"github.com/alnah/go-gdoc2html/internal/fileutil"
	"github.com/alnah/go-gdoc2html/internal/hints"
	"github.com/alnah/go-gdoc2html/internal/render"
	"github.com/alnah/go-gdoc2html/internal/shortcode"
	"github.com/alnah/go-gdoc2html/internal/tweaks"
)

// Exit codes for gdoc2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All documents converted
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or page metadata
	ExitIO       = 3 // File not found, permission denied
	ExitDocument = 4 // Document cannot be decoded or rendered
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// A batch with several failures gets the code of the first matching class.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document errors (exit 4)
	if errors.Is(err, gdoc2html.ErrNoContent) ||
		errors.Is(err, gdoc2html.ErrDecode) ||
		errors.Is(err, gdoc2html.ErrImport) ||
		errors.Is(err, gdoc2html.ErrRender) ||
		errors.Is(err, gdoc2html.ErrPostProcess) ||
		errors.Is(err, gdoc2html.ErrFrontMatter) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoDocuments) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrDuplicatePage) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, gdoc2html.ErrInvalidSlug) ||
		errors.Is(err, gdoc2html.ErrInvalidDate) ||
		errors.Is(err, gdoc2html.ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for an error, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, gdoc2html.ErrDecode):
		return hints.ForDecode()
	case errors.Is(err, render.ErrUnsupportedElement):
		return hints.ForUnsupportedElement()
	case errors.Is(err, shortcode.ErrEmptyShortcode),
		errors.Is(err, shortcode.ErrUnterminatedAttributes):
		return hints.ForDirective()
	case errors.Is(err, gdoc2html.ErrInvalidDate):
		return hints.ForDate()
	case errors.Is(err, tweaks.ErrUnresolvedBanner):
		return hints.ForBanner()
	case errors.Is(err, ErrOutputDir), errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	}
	return ""
}

// configHint returns the hint for a config that could not be found.
func configHint(err error, nameOrPath string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	if fileutil.IsFilePath(nameOrPath) {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound(config.SearchPaths(nameOrPath))
}
