package render

import (
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

func ptr[T any](v T) *T { return &v }

func text(s string) gdoc.ParagraphElement {
	return gdoc.ParagraphElement{TextRun: &gdoc.TextRun{Content: s}}
}

func styled(s string, style *gdoc.TextStyle) gdoc.ParagraphElement {
	return gdoc.ParagraphElement{TextRun: &gdoc.TextRun{Content: s, TextStyle: style}}
}

func para(elts ...gdoc.ParagraphElement) gdoc.StructuralElement {
	return gdoc.StructuralElement{Paragraph: &gdoc.Paragraph{Elements: elts}}
}

func styledPara(style *gdoc.ParagraphStyle, elts ...gdoc.ParagraphElement) gdoc.StructuralElement {
	return gdoc.StructuralElement{Paragraph: &gdoc.Paragraph{Elements: elts, ParagraphStyle: style}}
}

func item(level int, s string) gdoc.StructuralElement {
	return gdoc.StructuralElement{Paragraph: &gdoc.Paragraph{
		Elements:       []gdoc.ParagraphElement{text(s)},
		Bullet:         &gdoc.Bullet{ListID: "kix.list", NestingLevel: ptr(level)},
		ParagraphStyle: &gdoc.ParagraphStyle{IndentStart: pt(36 * float64(level+1))},
	}}
}

func pt(m float64) *gdoc.Dimension {
	return &gdoc.Dimension{Magnitude: ptr(m), Unit: gdoc.UnitPT}
}

func cell(s string) gdoc.TableCell {
	return gdoc.TableCell{Content: []gdoc.StructuralElement{para(text(s + "\n"))}}
}

func spanCell(s string, colspan, rowspan int) gdoc.TableCell {
	c := cell(s)
	c.TableCellStyle = &gdoc.TableCellStyle{ColumnSpan: ptr(colspan), RowSpan: ptr(rowspan)}
	return c
}

func row(cells ...gdoc.TableCell) gdoc.TableRow {
	return gdoc.TableRow{TableCells: cells}
}

func table(rows ...gdoc.TableRow) gdoc.StructuralElement {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0].TableCells)
	}
	return gdoc.StructuralElement{Table: &gdoc.Table{Rows: len(rows), Columns: cols, TableRows: rows}}
}

func doc(content ...gdoc.StructuralElement) *gdoc.Document {
	return &gdoc.Document{Body: &gdoc.Body{Content: content}}
}

// page wraps a rendered body the way Render does for an untitled document.
func page(body string) string {
	return "<html>\n<head>\n</head>\n<body>" + body + "</body>\n</html>\n"
}

func mustRender(t *testing.T, d *gdoc.Document, opts Options) string {
	t.Helper()

	got, err := Render(d, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return got
}

// assertBalanced tokenizes s and checks that every non-void start tag is
// closed by a matching end tag in stack order.
func assertBalanced(t *testing.T, s string) {
	t.Helper()

	var stack []string
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer error = %v", z.Err())
			}
			if len(stack) != 0 {
				t.Fatalf("unclosed elements %v in %q", stack, s)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !htmlwriter.IsVoid(string(name)) {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Fatalf("unexpected </%s> with open %v in %q", name, stack, s)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
