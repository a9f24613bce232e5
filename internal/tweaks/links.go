package tweaks

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const redirectPrefix = "https://www.google.com/url?"

// docURL matches document URLs, with or without the /u/N/ account segment.
var docURL = regexp.MustCompile(`^https://docs\.google\.com/(?:document|spreadsheets)(?:/u/[0-9]+)?/d/([^/?#]+)`)

// Pages maps document ids to the slug of the page they are published as.
type Pages map[string]string

// DocID extracts the document id from a document URL.
func DocID(u string) (string, bool) {
	m := docURL.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RewriteLinks rewrites the href of every link and returns the document
// links that are not part of pages, in document order.
//
// External links get a target attribute derived from their host, so that
// links to one site share a browser tab.
func RewriteLinks(root *html.Node, pages Pages) (unresolved []string) {
	for _, a := range FindAll(root, atom.A) {
		href, ok := getAttr(a, "href")
		if !ok {
			continue
		}
		href = unwrapRedirect(href)

		if id, isDoc := DocID(href); isDoc {
			if slug, found := pages[id]; found {
				href = "/" + slug + "/" + docFragment(href)
			} else {
				unresolved = append(unresolved, href)
			}
		}

		if target := Target(href); target != "" {
			setAttr(a, "target", target)
		}
		setAttr(a, "href", href)
	}
	return unresolved
}

// unwrapRedirect returns the q parameter of a google.com redirect link.
func unwrapRedirect(href string) string {
	if !strings.HasPrefix(href, redirectPrefix) {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if q := strings.TrimSpace(u.Query().Get("q")); q != "" {
		return q
	}
	return href
}

// docFragment converts the fragment of a document URL to a page anchor.
// Heading and bookmark fragments ("#heading=h.x") become "#h.x".
func docFragment(href string) string {
	_, frag, ok := strings.Cut(href, "#")
	if !ok || frag == "" {
		return ""
	}
	for _, prefix := range []string{"heading=", "bookmark="} {
		if id, found := strings.CutPrefix(frag, prefix); found {
			return "#" + id
		}
	}
	return "#" + frag
}

// Target returns the window name for an external link: the upper-case hex
// hash of its host name. It returns "" for other links and for IP hosts.
func Target(href string) string {
	if !strings.HasPrefix(href, "https://") && !strings.HasPrefix(href, "http://") {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}
	return fmt.Sprintf("%X", xxhash.Sum64String(host))
}
