package gdoc2html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-gdoc2html/internal/dateutil"
	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/mdimport"
	"github.com/alnah/go-gdoc2html/internal/render"
	"github.com/alnah/go-gdoc2html/internal/serialize"
	"github.com/alnah/go-gdoc2html/internal/tweaks"
	"github.com/alnah/go-gdoc2html/internal/yamlutil"
)

// Compile-time check that public resolvers are accepted by the renderer.
var _ render.ImageResolver = ImageResolver(nil)

// markupHTML tells Hugo the page body is HTML.
const markupHTML = "html"

// Converter orchestrates the document-to-page pipeline.
// Create with NewConverter and use Convert; a Converter is safe for
// concurrent use and holds no resources.
type Converter struct {
	images     ImageResolver
	convertURL func(url string) string
	site       Site
	logger     *slog.Logger
	dateFormat string
	dateLayout string
	importer   *mdimport.Importer
	now        func() time.Time
}

// NewConverter creates a Converter with default configuration.
// Returns an error if the date format is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		dateFormat: "rfc3339",
		importer:   mdimport.New(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	layout, err := dateutil.ParseDateFormat(c.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	c.dateLayout = layout

	return c, nil
}

// Convert runs the full pipeline and returns the page.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Load the document model
	doc, err := c.document(input)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Render to a full HTML document
	htmlContent, err := render.Render(doc, render.Options{
		Images:     c.images,
		ConvertURL: c.convertURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Reparse and apply the page tweaks
	root, err := tweaks.Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPostProcess, err)
	}
	tweaks.RemoveHead(root)

	unresolved := tweaks.RewriteLinks(root, tweaks.Pages(c.site.Pages))
	for _, href := range unresolved {
		c.logger.Warn("link to an unpublished document", "slug", input.Slug, "href", href)
	}

	// With a resolver, the banner must be a site image.
	var metaOpts []tweaks.MetaOption
	if c.images != nil {
		metaOpts = append(metaOpts, tweaks.RequireLocalBanner())
	}
	meta, err := tweaks.ExtractTitleAndSummary(root, metaOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPostProcess, err)
	}

	// Serialize the body content with shortcodes exposed to Hugo
	var body bytes.Buffer
	for n := tweaks.Body(root).FirstChild; n != nil; n = n.NextSibling {
		if err := serialize.Render(&body, n, serialize.UnwrapShortcodes()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPostProcess, err)
		}
	}

	fm, err := c.frontMatter(input, doc, meta)
	if err != nil {
		return nil, err
	}
	page, err := buildPage(fm, body.Bytes())
	if err != nil {
		return nil, err
	}

	return &Result{
		HTML:        body.Bytes(),
		Page:        page,
		FrontMatter: fm,
		Unresolved:  unresolved,
	}, nil
}

// document decodes or imports the input content.
func (c *Converter) document(input Input) (*gdoc.Document, error) {
	if input.Markdown != "" {
		doc, err := c.importer.Import([]byte(input.Markdown))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrImport, err)
		}
		return doc, nil
	}

	doc, err := gdoc.Decode(bytes.NewReader(input.DocumentJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}

// frontMatter collects the page metadata. The first heading wins over the
// document title, which is often a file name.
func (c *Converter) frontMatter(input Input, doc *gdoc.Document, meta tweaks.Meta) (FrontMatter, error) {
	fm := FrontMatter{
		Markup:  markupHTML,
		Author:  input.Author,
		Title:   meta.Title,
		Banner:  meta.Banner,
		Slug:    input.Slug,
		Summary: meta.Summary,
	}
	if fm.Title == "" {
		fm.Title = doc.TitleText()
	}
	if fm.Author == "" {
		fm.Author = c.site.DefaultAuthor
	}
	if fm.Slug != "" {
		fm.URL = "/" + fm.Slug + "/"
	}
	if input.Category != "" {
		fm.Categories = []string{input.Category}
		fm.Weight = input.Weight
	}

	now := c.now()
	var err error
	if fm.Date, err = dateutil.Resolve(input.Date, now, c.dateLayout); err != nil {
		return FrontMatter{}, fmt.Errorf("%w: date: %v", ErrInvalidDate, err)
	}
	if fm.Lastmod, err = dateutil.Resolve(input.Lastmod, now, c.dateLayout); err != nil {
		return FrontMatter{}, fmt.Errorf("%w: lastmod: %v", ErrInvalidDate, err)
	}
	return fm, nil
}

// buildPage writes the front matter, a blank line and the body.
func buildPage(fm FrontMatter, body []byte) ([]byte, error) {
	front, err := yamlutil.MarshalFrontMatter(fm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrontMatter, err)
	}

	page := make([]byte, 0, len(front)+1+len(body))
	page = append(page, front...)
	page = append(page, '\n')
	page = append(page, body...)
	return page, nil
}
