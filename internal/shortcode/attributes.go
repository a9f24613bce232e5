package shortcode

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// CloseMarker ends the innermost attribute-list wrapper.
const CloseMarker = "{::}"

// Attributes is a parsed inline attribute list.
type Attributes struct {
	ID      string
	Classes []string
	Attrs   map[string]string
}

// HTML returns the attributes in emission order: id, class, then the
// remaining keys sorted by name.
func (a *Attributes) HTML() []htmlwriter.Attr {
	var out []htmlwriter.Attr
	if a.ID != "" {
		out = append(out, htmlwriter.Attr{Key: "id", Val: a.ID})
	}
	if len(a.Classes) > 0 {
		out = append(out, htmlwriter.Attr{Key: "class", Val: strings.Join(a.Classes, " ")})
	}
	keys := make([]string, 0, len(a.Attrs))
	for k := range a.Attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, htmlwriter.Attr{Key: k, Val: a.Attrs[k]})
	}
	return out
}

// ParseAttributes parses "{: ... }". It returns nil attributes and no error
// for the close marker "{::}".
//
// Tokens are separated by spaces: ".name" and bare words are classes,
// "#name" is the id, and key=value (value optionally quoted) is an attribute.
// A closing ":}" is accepted as well as "}".
func ParseAttributes(text string) (*Attributes, error) {
	s := strings.TrimSpace(NormalizeQuotes(text))
	if s == CloseMarker {
		return nil, nil
	}
	if !strings.HasPrefix(s, "{:") {
		return nil, fmt.Errorf("%w: %q does not start with {:", ErrUnterminatedAttributes, text)
	}
	if len(s) < 3 || !strings.HasSuffix(s, "}") {
		return nil, fmt.Errorf("%w: %q", ErrUnterminatedAttributes, text)
	}
	body := strings.TrimSuffix(s[2:], "}")
	body = strings.TrimSuffix(body, ":")

	tokens, err := tokenize(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnterminatedAttributes, text, err)
	}

	attrs := &Attributes{Attrs: map[string]string{}}
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "#"):
			attrs.ID = tok[1:]
		case strings.HasPrefix(tok, "."):
			if tok != "." {
				attrs.Classes = append(attrs.Classes, tok[1:])
			}
		case strings.Contains(tok, "="):
			key, val, _ := strings.Cut(tok, "=")
			attrs.Attrs[key] = unquote(val)
		default:
			attrs.Classes = append(attrs.Classes, tok)
		}
	}
	return attrs, nil
}

// WriteAttributes writes the wrapper start tag for an attribute list, or the
// wrapper end tag for the close marker.
func WriteAttributes(w *htmlwriter.Writer, text string) error {
	attrs, err := ParseAttributes(text)
	if err != nil {
		return err
	}
	w.Newline()
	if attrs == nil {
		if err := w.EndTag(WrapperTag); err != nil {
			return err
		}
	} else {
		w.StartTag(WrapperTag, attrs.HTML()...)
	}
	w.Newline()
	return nil
}

// tokenize splits on spaces outside of quotes.
func tokenize(s string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quote  rune
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
			cur.WriteRune(r)
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("missing closing %c", quote)
	}
	flush()
	return tokens, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
