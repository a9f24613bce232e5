package mdimport

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
)

// inlines appends the runs of n's inline children, styled with style plus
// whatever markup encloses them.
func (b *builder) inlines(n ast.Node, style gdoc.TextStyle, out *[]gdoc.ParagraphElement) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := b.inline(c, style, out); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) inline(n ast.Node, style gdoc.TextStyle, out *[]gdoc.ParagraphElement) error {
	switch nd := n.(type) {
	case *ast.Text:
		s := string(nd.Segment.Value(b.src))
		switch {
		case nd.HardLineBreak():
			s += "\v"
		case nd.SoftLineBreak():
			s += " "
		}
		appendText(out, s, style)

	case *ast.String:
		appendText(out, string(nd.Value), style)

	case *ast.Emphasis:
		t := true
		if nd.Level >= 2 {
			style.Bold = &t
		} else {
			style.Italic = &t
		}
		return b.inlines(nd, style, out)

	case *extast.Strikethrough:
		t := true
		style.Strikethrough = &t
		return b.inlines(nd, style, out)

	case *ast.CodeSpan:
		appendText(out, b.segments(nd), style)

	case *ast.Link:
		style.Link = link(string(nd.Destination))
		return b.inlines(nd, style, out)

	case *ast.AutoLink:
		url := string(nd.URL(b.src))
		style.Link = link(url)
		appendText(out, string(nd.Label(b.src)), style)

	case *ast.Image:
		// Images have no content URI outside the document API: keep a link.
		dest := string(nd.Destination)
		alt := b.segments(nd)
		if alt == "" {
			alt = dest
		}
		style.Link = link(dest)
		appendText(out, alt, style)

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < nd.Segments.Len(); i++ {
			seg := nd.Segments.At(i)
			sb.Write(seg.Value(b.src))
		}
		appendText(out, sb.String(), style)

	case *extast.TaskCheckBox:
		box := "☐ "
		if nd.IsChecked {
			box = "☑ "
		}
		appendText(out, box, style)

	default:
		return b.inlines(n, style, out)
	}
	return nil
}

// segments returns the raw text of n's text descendants.
func (b *builder) segments(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(b.src))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func link(dest string) *gdoc.Link {
	if id, ok := strings.CutPrefix(dest, "#"); ok {
		return &gdoc.Link{HeadingID: id}
	}
	return &gdoc.Link{URL: dest}
}

// appendText adds s to the last run when it has the same style, or starts
// a new run.
func appendText(out *[]gdoc.ParagraphElement, s string, style gdoc.TextStyle) {
	if s == "" {
		return
	}
	elts := *out
	if n := len(elts); n > 0 && elts[n-1].TextRun != nil && sameStyle(elts[n-1].TextRun.TextStyle, style) {
		elts[n-1].TextRun.Content += s
		return
	}
	var ts *gdoc.TextStyle
	if style != (gdoc.TextStyle{}) {
		ts = &style
	}
	*out = append(elts, textRun(s, ts))
}

func sameStyle(a *gdoc.TextStyle, b gdoc.TextStyle) bool {
	if a == nil {
		return b == (gdoc.TextStyle{})
	}
	return a.IsBold() == b.IsBold() &&
		a.IsItalic() == b.IsItalic() &&
		a.IsStrikethrough() == b.IsStrikethrough() &&
		linkTarget(a.Link) == linkTarget(b.Link)
}

func linkTarget(l *gdoc.Link) string {
	href, _ := l.Target()
	return href
}

func textRun(s string, style *gdoc.TextStyle) gdoc.ParagraphElement {
	return gdoc.ParagraphElement{TextRun: &gdoc.TextRun{Content: s, TextStyle: style}}
}
