package gdoc2html

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

// Field length limits for front matter values.
const (
	MaxSlugLength     = 200
	MaxCategoryLength = 100
)

// slugPattern accepts URL path segments made of lower case words.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// Input contains conversion parameters. Exactly one of DocumentJSON and
// Markdown must be set.
type Input struct {
	DocumentJSON []byte // Google Docs API document resource
	Markdown     string // Markdown source, imported into the same document model

	Slug     string // Page slug (optional, validated when set)
	Author   string // Falls back to Site.DefaultAuthor
	Date     string // Publish date: sheet/ISO date, "auto" or "auto:FORMAT"
	Lastmod  string // Update date, same syntax as Date
	Category string // Single Hugo category (optional)
	Weight   *int   // Order within the category, only written with a category
}

// Validate checks the input fields that do not need the content.
func (in *Input) Validate() error {
	switch {
	case len(in.DocumentJSON) == 0 && in.Markdown == "":
		return ErrNoContent
	case len(in.DocumentJSON) > 0 && in.Markdown != "":
		return ErrAmbiguousInput
	}
	if in.Slug != "" {
		if len(in.Slug) > MaxSlugLength {
			return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidSlug, len(in.Slug), MaxSlugLength)
		}
		if !slugPattern.MatchString(in.Slug) {
			return fmt.Errorf("%w: %q", ErrInvalidSlug, in.Slug)
		}
	}
	if len(in.Category) > MaxCategoryLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidCategory, len(in.Category), MaxCategoryLength)
	}
	return nil
}

// FrontMatter is the Hugo front matter written above the page body.
type FrontMatter struct {
	Markup     string   `yaml:"markup"`
	Author     string   `yaml:"author,omitempty"`
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date,omitempty"`
	Lastmod    string   `yaml:"lastmod,omitempty"`
	Banner     string   `yaml:"banner,omitempty"`
	Slug       string   `yaml:"slug,omitempty"`
	URL        string   `yaml:"url,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Weight     *int     `yaml:"weight,omitempty"`
	Summary    string   `yaml:"summary,omitempty"`
}

// Result holds the output of a conversion.
type Result struct {
	HTML        []byte      // Body content after post-processing
	Page        []byte      // Front matter fences followed by HTML
	FrontMatter FrontMatter // Values written to Page
	Unresolved  []string    // Document links with no known page, in order
}

// Site describes the pages published together, so links between documents
// become links between pages.
type Site struct {
	DefaultAuthor string
	Pages         map[string]string // Document ID -> slug
}

// ImageResolver maps an inline image to the URL written in its src
// attribute. id is the inline object ID and src the content URI from the
// document.
type ImageResolver interface {
	ResolveImage(id, src string) string
}

// ImageResolverFunc adapts a function to ImageResolver.
type ImageResolverFunc func(id, src string) string

// ResolveImage calls f(id, src).
func (f ImageResolverFunc) ResolveImage(id, src string) string { return f(id, src) }

// Option configures a Converter.
type Option func(*Converter)

// WithImageResolver sets how image sources are rewritten. By default the
// content URI of the document is kept.
func WithImageResolver(r ImageResolver) Option {
	return func(c *Converter) {
		c.images = r
	}
}

// WithURLConverter sets a function applied to external link targets while
// rendering. Internal heading links are never converted.
func WithURLConverter(fn func(url string) string) Option {
	return func(c *Converter) {
		c.convertURL = fn
	}
}

// WithSite sets the default author and the document-to-slug table used to
// rewrite links between documents.
func WithSite(site Site) Option {
	return func(c *Converter) {
		c.site = site
	}
}

// WithLogger sets the logger for warnings such as unresolved links.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gdoc2html: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}

// WithDateFormat sets the layout of front matter dates, as a format using
// the YYYY/MM/DD/hh/mm/ss tokens, a preset name or "rfc3339" (default).
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.dateFormat = format
	}
}

// WithClock sets the clock used to resolve "auto" dates. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}
