package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
	"github.com/alnah/go-gdoc2html/internal/shortcode"
)

// listTag wraps list items. The source does not tell bullets from numbers
// in a way that survives the API, so every list is unordered.
const listTag = "ul"

// Indent tracks list nesting across the paragraphs of one sequence.
type Indent struct {
	Depth     int
	Magnitude float64
}

// nextDepth returns the list depth of a paragraph and the indentation to
// remember for the next one.
//
// A paragraph without bullet whose start indent equals the previous
// paragraph's stays at the previous depth: it continues a list item. The
// comparison is exact; only this case is handled, not general indentation.
func (in Indent) nextDepth(p *gdoc.Paragraph) (depth int, magnitude float64) {
	if p.Bullet != nil {
		depth = p.Bullet.Level() + 1
	}
	if style := p.ParagraphStyle; style != nil && style.IndentStart != nil && style.IndentStart.Magnitude != nil {
		magnitude = *style.IndentStart.Magnitude
		if depth == 0 && magnitude == in.Magnitude {
			depth = in.Depth
		}
	}
	return depth, magnitude
}

// setDepth opens or closes list wrappers until indent.Depth is depth.
func (r *renderer) setDepth(indent *Indent, depth int) error {
	for ; indent.Depth < depth; indent.Depth++ {
		r.w.Newline()
		r.w.StartTag(listTag)
		r.w.Newline()
	}
	for ; indent.Depth > depth; indent.Depth-- {
		if err := r.endLine(listTag); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) paragraph(p *gdoc.Paragraph, indent *Indent) error {
	text := paragraphText(p)
	switch shortcode.Classify(text) {
	case shortcode.Shortcode:
		r.w.Newline()
		return shortcode.Write(r.w, strings.TrimSpace(text))
	case shortcode.AttributeList:
		// Wrappers must not interleave with list elements.
		if err := r.setDepth(indent, 0); err != nil {
			return err
		}
		indent.Magnitude = 0
		return shortcode.WriteAttributes(r.w, text)
	}

	depth, magnitude := indent.nextDepth(p)
	if err := r.setDepth(indent, depth); err != nil {
		return err
	}
	indent.Magnitude = magnitude

	tag, attrs := paragraphTag(p)
	r.w.Newline()
	r.w.StartTag(tag, attrs...)
	for i := range p.Elements {
		if err := r.paragraphElement(&p.Elements[i]); err != nil {
			return err
		}
	}
	return r.endLine(tag)
}

// paragraphText concatenates the content of the paragraph's text runs.
func paragraphText(p *gdoc.Paragraph) string {
	var sb strings.Builder
	for _, elt := range p.Elements {
		if elt.TextRun != nil {
			sb.WriteString(elt.TextRun.Content)
		}
	}
	return sb.String()
}

var headingTags = map[string]string{
	gdoc.StyleHeading1: "h1",
	gdoc.StyleHeading2: "h2",
	gdoc.StyleHeading3: "h3",
	gdoc.StyleHeading4: "h4",
}

// Justified text is left to the site stylesheet.
var alignments = map[string]string{
	gdoc.AlignStart:  "start",
	gdoc.AlignEnd:    "end",
	gdoc.AlignCenter: "center",
}

// paragraphTag selects the element and attributes of a paragraph: p, h1-h4
// for headings, li for list items. Other named styles become a class.
func paragraphTag(p *gdoc.Paragraph) (string, []htmlwriter.Attr) {
	tag := "p"
	var id, class, style string

	if s := p.ParagraphStyle; s != nil {
		switch name := s.NamedStyleType; {
		case name == "" || name == gdoc.StyleNormalText:
		case headingTags[name] != "":
			tag = headingTags[name]
		default:
			class = strings.ToLower(name)
		}
		if align, ok := alignments[s.Alignment]; ok {
			style = "text-align:" + align + ";"
		}
		id = s.HeadingID
	}
	if p.Bullet != nil {
		tag = "li"
	}

	attrs := []htmlwriter.Attr{
		{Key: nonEmpty("id", id), Val: id},
		{Key: nonEmpty("class", class), Val: class},
		{Key: nonEmpty("style", style), Val: style},
	}
	return tag, attrs
}

// nonEmpty returns key when val is set, so that the writer skips empty
// attributes.
func nonEmpty(key, val string) string {
	if val == "" {
		return ""
	}
	return key
}

func (r *renderer) paragraphElement(elt *gdoc.ParagraphElement) error {
	switch kind := elt.Kind(); kind {
	case gdoc.KindTextRun:
		return r.textRun(elt.TextRun)
	case gdoc.KindPageBreak:
		return nil
	case gdoc.KindFootnoteReference:
		// Footnote bodies are not rendered.
		return nil
	case gdoc.KindHorizontalRule:
		r.w.StartTag("hr")
		r.w.Newline()
		return nil
	case gdoc.KindInlineObject:
		return r.inlineObject(elt.InlineObjectElement, elt.StartIndex)
	case gdoc.KindPerson:
		r.w.Text(elt.Person.DisplayName())
		return nil
	case gdoc.KindAutoText, gdoc.KindColumnBreak, gdoc.KindEquation, gdoc.KindRichLink:
		return fmt.Errorf("%w: %s at index %d", ErrUnsupportedElement, kind, elt.StartIndex)
	default:
		return fmt.Errorf("%w: paragraph element at index %d", ErrInvalidElement, elt.StartIndex)
	}
}
