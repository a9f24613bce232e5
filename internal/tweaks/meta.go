package tweaks

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnresolvedBanner is returned when local banners are required and the
// banner image still points to a remote URL.
var ErrUnresolvedBanner = errors.New("banner image url has not been resolved")

// MetaOption configures ExtractTitleAndSummary.
type MetaOption func(*metaOptions)

type metaOptions struct {
	localBanner bool
}

// RequireLocalBanner rejects a banner whose src is still an http(s) URL,
// which means the image was not relocated to the site.
func RequireLocalBanner() MetaOption {
	return func(o *metaOptions) { o.localBanner = true }
}

// Meta is the page information extracted from the content.
type Meta struct {
	Title   string
	Summary string
	Banner  string
}

// ExtractTitleAndSummary removes the first <h1> and everything before it
// at the same level. The heading text is the title, the text before it the
// summary and the first image before it the banner.
//
// A page without <h1> is left unchanged and the returned Meta is empty.
func ExtractTitleAndSummary(root *html.Node, opts ...MetaOption) (Meta, error) {
	var o metaOptions
	for _, opt := range opts {
		opt(&o)
	}
	if root == nil {
		return Meta{}, ErrNilNode
	}
	h1 := Find(root, atom.H1)
	if h1 == nil {
		return Meta{}, nil
	}
	if o.localBanner {
		if src, ok := bannerSource(h1); ok && strings.HasPrefix(src, "http") {
			return Meta{}, fmt.Errorf("%w: %s", ErrUnresolvedBanner, src)
		}
	}

	meta := Meta{Title: Text(h1)}

	var summary string
	for n := h1.Parent.FirstChild; n != h1; {
		next := n.NextSibling
		if n.Type == html.ElementNode {
			if text := Text(n); text != "" {
				if summary != "" {
					summary += " "
				}
				summary += text
			}
			if meta.Banner == "" {
				if img := Find(n, atom.Img); img != nil {
					meta.Banner, _ = getAttr(img, "src")
				}
			}
		}
		h1.Parent.RemoveChild(n)
		n = next
	}
	h1.Parent.RemoveChild(h1)

	meta.Summary = summary
	return meta, nil
}

// bannerSource returns the src of the first image before h1 at its level.
func bannerSource(h1 *html.Node) (string, bool) {
	for n := h1.Parent.FirstChild; n != h1; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if img := Find(n, atom.Img); img != nil {
			if src, ok := getAttr(img, "src"); ok && src != "" {
				return src, true
			}
		}
	}
	return "", false
}
