// Package shortcode parses the directives authors type as plain paragraphs:
//
//	{{ html <div class="note"> }}     raw markup, written as is
//	{{< youtube id="xyz" >}}          left for the site generator
//	{: .note #intro data-x="1" }      opens a <div> with these attributes
//	{::}                              closes it
//
// A paragraph is a directive only when its whole trimmed text is one; see
// Classify.
package shortcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// Sentinel errors for directive parsing.
var (
	ErrEmptyShortcode         = errors.New("shortcode has no command")
	ErrUnterminatedAttributes = errors.New("unterminated attribute list")
)

// Directive is the kind of directive found in a paragraph.
type Directive int

// Directive kinds.
const (
	None Directive = iota
	Shortcode
	AttributeList
)

// HTMLCommand is the only shortcode expanded at render time.
const HTMLCommand = "html"

// WrapperTag is the element opened by an attribute list.
const WrapperTag = "div"

// smartQuotes undoes the word processor's typographic substitution, which
// would otherwise break attribute quoting in passthrough markup.
var smartQuotes = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
)

// NormalizeQuotes replaces typographic quotes with their ASCII forms.
func NormalizeQuotes(s string) string {
	return smartQuotes.Replace(s)
}

// Classify reports whether the paragraph text is a directive.
func Classify(text string) Directive {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "{{") && strings.HasSuffix(text, "}}"):
		return Shortcode
	case strings.HasPrefix(text, "{:"):
		return AttributeList
	}
	return None
}

// Write writes every shortcode found in text. Text before the first "{{"
// is ignored. Both {{ cmd args }} and {{< cmd args >}} spellings are
// accepted; the html command writes its arguments as raw markup and any
// other command is written back as a comment in the {{< cmd args >}} form.
func Write(w *htmlwriter.Writer, text string) error {
	segments := strings.Split(NormalizeQuotes(text), "{{")
	for _, seg := range segments[1:] {
		cmd, args := splitSegment(seg)
		if cmd == "" {
			return fmt.Errorf("%w: %q", ErrEmptyShortcode, "{{"+seg)
		}
		if cmd == HTMLCommand {
			w.Raw(args)
		} else {
			w.Comment(Canonical(cmd, args))
		}
		w.Newline()
	}
	return nil
}

// Canonical returns the {{< cmd args >}} form of a shortcode.
func Canonical(cmd, args string) string {
	if args == "" {
		return "{{< " + cmd + " >}}"
	}
	return "{{< " + cmd + " " + args + " >}}"
}

// splitSegment strips the delimiters of one shortcode and splits it on the
// first space.
func splitSegment(seg string) (cmd, args string) {
	s := strings.TrimSpace(seg)
	s = strings.TrimSuffix(s, "}}")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		s = strings.TrimPrefix(s, "<")
		s = strings.TrimSuffix(s, ">")
		s = strings.TrimSpace(s)
	}
	cmd, args, _ = strings.Cut(s, " ")
	return cmd, strings.TrimSpace(args)
}
