// Package htmlwriter emits HTML from start-tag, text and end-tag events.
//
// The Writer escapes text and attribute values, knows which elements are
// void, and keeps a stack of open elements so that every end tag matches the
// element it closes. Raw markup written with Raw bypasses both escaping and
// the stack: it is used for trusted passthrough content only.
package htmlwriter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for well-formedness violations.
var (
	ErrTagMismatch  = errors.New("end tag does not match open element")
	ErrUnclosedTags = errors.New("elements left open")
)

// Attr is a single attribute. Attributes are written in the order given.
type Attr struct {
	Key string
	Val string
}

// voidElements never have content or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements hold text that is written without escaping.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

// IsVoid reports whether name is a void element.
func IsVoid(name string) bool { return voidElements[name] }

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"\u00a0", "&nbsp;",
	)
)

// Writer accumulates HTML in memory.
type Writer struct {
	buf   strings.Builder
	stack []string
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{}
}

// StartTag writes an opening tag. Attributes with an empty key are skipped.
// Void elements are not pushed on the stack.
func (w *Writer) StartTag(name string, attrs ...Attr) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.Key)
		w.buf.WriteString(`="`)
		w.buf.WriteString(attrEscaper.Replace(a.Val))
		w.buf.WriteByte('"')
	}
	w.buf.WriteByte('>')
	if !voidElements[name] {
		w.stack = append(w.stack, name)
	}
}

// EndTag closes the innermost open element, which must be name.
func (w *Writer) EndTag(name string) error {
	top := w.Current()
	if top != name {
		if top == "" {
			return fmt.Errorf("%w: </%s> with no open element", ErrTagMismatch, name)
		}
		return fmt.Errorf("%w: </%s> closes <%s>", ErrTagMismatch, name, top)
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
	return nil
}

// Current returns the innermost open element, or "" when none is open.
func (w *Writer) Current() string {
	if len(w.stack) == 0 {
		return ""
	}
	return w.stack[len(w.stack)-1]
}

// Depth returns the number of open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Text writes escaped text, or raw text inside script-like elements.
func (w *Writer) Text(s string) {
	if rawTextElements[w.Current()] {
		w.buf.WriteString(s)
		return
	}
	w.buf.WriteString(textEscaper.Replace(s))
}

// Raw writes trusted markup verbatim.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

// Comment writes an HTML comment. The content is not escaped.
func (w *Writer) Comment(s string) {
	w.buf.WriteString("<!--")
	w.buf.WriteString(s)
	w.buf.WriteString("-->")
}

// Newline writes a line feed unless the output already ends with one.
func (w *Writer) Newline() {
	s := w.buf.String()
	if s == "" || s[len(s)-1] == '\n' {
		return
	}
	w.buf.WriteByte('\n')
}

// Close checks that every element has been closed.
func (w *Writer) Close() error {
	if len(w.stack) > 0 {
		return fmt.Errorf("%w: %s", ErrUnclosedTags, strings.Join(w.stack, " > "))
	}
	return nil
}

// String returns the markup written so far.
func (w *Writer) String() string {
	return w.buf.String()
}
