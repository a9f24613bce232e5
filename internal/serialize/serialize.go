// Package serialize writes an x/net/html tree as HTML text with a stable
// byte output: attributes of every element are written sorted by name,
// whatever order they were added in.
//
// Comments that hold a site generator shortcode ("{{< ... >}}") are
// written without any escaping followed by a line feed, so that the
// generator finds them textually.
package serialize

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// ShortcodePrefix marks comments written verbatim.
const ShortcodePrefix = "{{<"

type options struct {
	unwrapShortcodes bool
}

// Option configures serialization.
type Option func(*options)

// UnwrapShortcodes writes shortcode comments as bare "{{< ... >}}" text
// instead of keeping them inside <!-- -->. Use it for pages handed to the
// site generator, which expands them.
func UnwrapShortcodes() Option {
	return func(o *options) { o.unwrapShortcodes = true }
}

// Render writes n and its descendants to w. The tree is copied first; n is
// left untouched.
func Render(w io.Writer, n *html.Node, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return html.Render(w, stable(n, o))
}

// String returns the serialization of n and its descendants.
func String(n *html.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// stable returns a copy of n with sorted attributes and shortcode comments
// replaced by raw nodes.
func stable(n *html.Node, o options) *html.Node {
	if n.Type == html.CommentNode && strings.HasPrefix(n.Data, ShortcodePrefix) {
		data := n.Data + "\n"
		if !o.unwrapShortcodes {
			data = "<!--" + n.Data + "-->\n"
		}
		return &html.Node{Type: html.RawNode, Data: data}
	}

	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      SortedAttrs(n),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(stable(child, o))
	}
	return c
}

// SortedAttrs returns a copy of the attributes of n sorted by qualified
// name. n.Attr is left untouched.
func SortedAttrs(n *html.Node) []html.Attribute {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := slices.Clone(n.Attr)
	slices.SortStableFunc(attrs, func(a, b html.Attribute) int {
		return cmp.Compare(qualifiedName(a), qualifiedName(b))
	})
	return attrs
}

func qualifiedName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}
