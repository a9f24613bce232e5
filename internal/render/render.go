// Package render converts a gdoc.Document into an HTML page.
//
// Rendering is a single recursive pass over the document. All mutable state
// (output buffer, open-element stack, list indentation) lives in a renderer
// created for each call, so Render may be called concurrently on distinct
// documents.
//
// Unsupported content fails the render instead of being dropped: a page
// that silently lost an equation looks fine and is wrong.
package render

import (
	"errors"
	"fmt"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// Sentinel errors for rendering.
var (
	ErrNilDocument        = errors.New("nil document")
	ErrUnsupportedElement = errors.New("unsupported element")
	ErrInvalidElement     = errors.New("element has no single variant")
	ErrDanglingReference  = errors.New("inline object not found")
	ErrUnsupportedUnit    = errors.New("unsupported dimension unit")
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInvalidSpan        = errors.New("cell span exceeds table grid")
)

// ImageResolver maps an image to the src written in the output. It is
// called once per image and must be safe for concurrent use when the same
// resolver serves several renders.
type ImageResolver interface {
	ResolveImage(id, src string) string
}

// ImageResolverFunc adapts a function to ImageResolver.
type ImageResolverFunc func(id, src string) string

// ResolveImage calls f(id, src).
func (f ImageResolverFunc) ResolveImage(id, src string) string { return f(id, src) }

// Options configures a render. The zero value keeps image sources and link
// targets unchanged.
type Options struct {
	Images     ImageResolver
	ConvertURL func(url string) string
}

type renderer struct {
	doc  *gdoc.Document
	opts Options
	w    *htmlwriter.Writer
}

// Render returns the full HTML page for doc.
func Render(doc *gdoc.Document, opts Options) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	r := &renderer{doc: doc, opts: opts, w: htmlwriter.New()}
	if err := r.document(); err != nil {
		return "", err
	}
	return r.w.String(), nil
}

func (r *renderer) document() error {
	r.w.StartTag("html")
	r.w.Newline()
	r.w.StartTag("head")
	r.w.Newline()
	if r.doc.Title != nil {
		r.w.StartTag("title")
		r.w.Text(*r.doc.Title)
		if err := r.endLine("title"); err != nil {
			return err
		}
	}
	if err := r.endLine("head"); err != nil {
		return err
	}

	r.w.StartTag("body")
	if r.doc.Body != nil {
		if err := r.structuralElements(r.doc.Body.Content); err != nil {
			return err
		}
	}
	if err := r.endLine("body"); err != nil {
		return err
	}
	if err := r.endLine("html"); err != nil {
		return err
	}
	return r.w.Close()
}

// endLine closes name and starts a new line.
func (r *renderer) endLine(name string) error {
	if err := r.w.EndTag(name); err != nil {
		return err
	}
	r.w.Newline()
	return nil
}

// structuralElements renders a sequence with its own list indentation and
// closes the lists still open at the end.
func (r *renderer) structuralElements(elts []gdoc.StructuralElement) error {
	var indent Indent
	for i := range elts {
		if err := r.structuralElement(&elts[i], &indent); err != nil {
			return err
		}
	}
	return r.setDepth(&indent, 0)
}

func (r *renderer) structuralElement(elt *gdoc.StructuralElement, indent *Indent) error {
	switch kind := elt.Kind(); kind {
	case gdoc.KindParagraph:
		return r.paragraph(elt.Paragraph, indent)
	case gdoc.KindTable:
		return r.table(elt.Table)
	case gdoc.KindSectionBreak:
		// Column layout of sections is not rendered.
		return nil
	case gdoc.KindTableOfContents:
		return r.tableOfContents(elt.TableOfContents)
	default:
		return fmt.Errorf("%w: structural element at index %d", ErrInvalidElement, elt.StartIndex)
	}
}

func (r *renderer) tableOfContents(toc *gdoc.TableOfContents) error {
	r.w.Newline()
	r.w.StartTag("div", htmlwriter.Attr{Key: "class", Val: "table-of-contents"})
	r.w.Newline()
	if err := r.structuralElements(toc.Content); err != nil {
		return err
	}
	return r.endLine("div")
}

func (r *renderer) convertURL(url string) string {
	if r.opts.ConvertURL == nil {
		return url
	}
	return r.opts.ConvertURL(url)
}
