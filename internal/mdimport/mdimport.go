// Package mdimport builds a gdoc.Document from Markdown, so pages can be
// authored or previewed without the document API.
//
// The mapping follows what the renderer reads back: headings become named
// heading styles, list items become bulleted paragraphs with an indent per
// level, and inline markup becomes text styles. Raw HTML inside a paragraph
// is kept as text, which lets "{{ html ... }}" shortcodes through; HTML
// blocks are rejected.
package mdimport

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
)

// ErrUnsupportedMarkdown is returned for Markdown constructs that have no
// document equivalent.
var ErrUnsupportedMarkdown = errors.New("unsupported markdown")

// ListIndent is the start indent added per list level, in points.
const ListIndent = 36.0

// Importer converts Markdown to documents. It is safe for concurrent use.
type Importer struct {
	md goldmark.Markdown
}

// New creates an Importer with GFM extensions.
func New() *Importer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Heading ids are link targets
		),
	)
	return &Importer{md: md}
}

var defaultImporter = New()

// Import converts src with the default Importer.
func Import(src []byte) (*gdoc.Document, error) {
	return defaultImporter.Import(src)
}

// Import converts src to a document. The title is the text of the first
// level 1 heading, if any.
func (im *Importer) Import(src []byte) (*gdoc.Document, error) {
	root := im.md.Parser().Parse(text.NewReader(src))
	b := &builder{src: src}
	content, err := b.blocks(root, -1)
	if err != nil {
		return nil, err
	}
	doc := &gdoc.Document{Body: &gdoc.Body{Content: content}}
	if b.title != "" {
		doc.Title = &b.title
	}
	return doc, nil
}

type builder struct {
	src   []byte
	title string
	lists int
}

// blocks converts the block children of n. level is the list level of the
// enclosing list item, -1 outside lists.
func (b *builder) blocks(n ast.Node, level int) ([]gdoc.StructuralElement, error) {
	var out []gdoc.StructuralElement
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		elts, err := b.block(c, level)
		if err != nil {
			return nil, err
		}
		out = append(out, elts...)
	}
	return out, nil
}

func (b *builder) block(n ast.Node, level int) ([]gdoc.StructuralElement, error) {
	switch nd := n.(type) {
	case *ast.Heading:
		p, err := b.paragraph(nd, &gdoc.ParagraphStyle{
			NamedStyleType: fmt.Sprintf("HEADING_%d", nd.Level),
			HeadingID:      headingID(nd),
		})
		if err != nil {
			return nil, err
		}
		if nd.Level == 1 && b.title == "" {
			b.title = plainText(p)
		}
		return one(p), nil

	case *ast.Paragraph, *ast.TextBlock:
		p, err := b.paragraph(nd, indentStyle(level))
		if err != nil {
			return nil, err
		}
		return one(p), nil

	case *ast.List:
		return b.list(nd, level+1)

	case *ast.ThematicBreak:
		return one(&gdoc.Paragraph{Elements: []gdoc.ParagraphElement{
			{HorizontalRule: &gdoc.HorizontalRule{}},
			textRun("\n", nil),
		}}), nil

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		return one(b.code(nd, level)), nil

	case *ast.Blockquote:
		return b.blocks(nd, level)

	case *extast.Table:
		t, err := b.table(nd)
		if err != nil {
			return nil, err
		}
		return []gdoc.StructuralElement{{Table: t}}, nil

	case *ast.HTMLBlock:
		return nil, fmt.Errorf("%w: HTML block at line %d", ErrUnsupportedMarkdown, b.line(nd))

	default:
		return nil, fmt.Errorf("%w: %s block", ErrUnsupportedMarkdown, n.Kind())
	}
}

// list converts the items of a list at the given level. The first block of
// an item carries the bullet; the following blocks keep its indent so they
// stay in the item.
func (b *builder) list(list *ast.List, level int) ([]gdoc.StructuralElement, error) {
	b.lists++
	listID := fmt.Sprintf("md.list.%d", b.lists)
	var out []gdoc.StructuralElement
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		elts, err := b.blocks(item, level)
		if err != nil {
			return nil, err
		}
		if len(elts) > 0 && elts[0].Paragraph != nil {
			elts[0].Paragraph.Bullet = &gdoc.Bullet{
				ListID:       listID,
				NestingLevel: intPtr(level),
			}
		}
		out = append(out, elts...)
	}
	return out, nil
}

func (b *builder) paragraph(n ast.Node, style *gdoc.ParagraphStyle) (*gdoc.Paragraph, error) {
	var elts []gdoc.ParagraphElement
	if err := b.inlines(n, gdoc.TextStyle{}, &elts); err != nil {
		return nil, err
	}
	return &gdoc.Paragraph{Elements: terminate(elts), ParagraphStyle: style}, nil
}

// code keeps the lines of a code block in one paragraph, separated by soft
// line breaks.
func (b *builder) code(n ast.Node, level int) *gdoc.Paragraph {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimRight(string(seg.Value(b.src)), "\n"))
	}
	return &gdoc.Paragraph{
		Elements:       []gdoc.ParagraphElement{textRun(strings.Join(parts, "\v")+"\n", nil)},
		ParagraphStyle: indentStyle(level),
	}
}

func (b *builder) table(t *extast.Table) (*gdoc.Table, error) {
	out := &gdoc.Table{}
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		var row gdoc.TableRow
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			p, err := b.paragraph(c, nil)
			if err != nil {
				return nil, err
			}
			row.TableCells = append(row.TableCells, gdoc.TableCell{Content: one(p)})
		}
		out.TableRows = append(out.TableRows, row)
		out.Columns = max(out.Columns, len(row.TableCells))
	}
	out.Rows = len(out.TableRows)
	return out, nil
}

// line returns the 1-based source line of a block, or 0 when unknown.
func (b *builder) line(n ast.Node) int {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	return bytes.Count(b.src[:lines.At(0).Start], []byte("\n")) + 1
}

func one(p *gdoc.Paragraph) []gdoc.StructuralElement {
	return []gdoc.StructuralElement{{Paragraph: p}}
}

func indentStyle(level int) *gdoc.ParagraphStyle {
	if level < 0 {
		return &gdoc.ParagraphStyle{NamedStyleType: gdoc.StyleNormalText}
	}
	magnitude := ListIndent * float64(level+1)
	return &gdoc.ParagraphStyle{
		NamedStyleType: gdoc.StyleNormalText,
		IndentStart:    &gdoc.Dimension{Magnitude: &magnitude, Unit: gdoc.UnitPT},
	}
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	if id, ok := v.([]byte); ok {
		return string(id)
	}
	return ""
}

// terminate ends the paragraph with the line feed the document API puts
// at the end of every paragraph.
func terminate(elts []gdoc.ParagraphElement) []gdoc.ParagraphElement {
	if n := len(elts); n > 0 && elts[n-1].TextRun != nil {
		elts[n-1].TextRun.Content += "\n"
		return elts
	}
	return append(elts, textRun("\n", nil))
}

func plainText(p *gdoc.Paragraph) string {
	var sb strings.Builder
	for _, e := range p.Elements {
		if e.TextRun != nil {
			sb.WriteString(e.TextRun.Content)
		}
	}
	return strings.TrimSpace(sb.String())
}

func intPtr(i int) *int { return &i }
