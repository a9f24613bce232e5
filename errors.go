package gdoc2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoContent       = errors.New("document JSON or markdown content is required")
	ErrAmbiguousInput  = errors.New("document JSON and markdown are mutually exclusive")
	ErrDecode          = errors.New("document decoding failed")
	ErrImport          = errors.New("markdown import failed")
	ErrRender          = errors.New("HTML rendering failed")
	ErrPostProcess     = errors.New("HTML post-processing failed")
	ErrFrontMatter     = errors.New("front matter encoding failed")
	ErrInvalidSlug     = errors.New("invalid slug")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
)
