package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// softBreak separates lines inside a paragraph.
const softBreak = "\v"

// textRun writes a run as a > strong > em > del > sup|sub > span[style]
// around its content. Only the wrappers the style asks for are written.
func (r *renderer) textRun(run *gdoc.TextRun) error {
	style := run.TextStyle
	var href string
	var internal bool
	if style != nil {
		href, internal = style.Link.Target()
	}
	linked := href != ""

	var tags []string
	if style.IsBold() {
		tags = append(tags, "strong")
	}
	if style.IsItalic() {
		tags = append(tags, "em")
	}
	if style.IsStrikethrough() {
		tags = append(tags, "del")
	}
	if style != nil {
		switch style.BaselineOffset {
		case gdoc.BaselineSuperscript:
			tags = append(tags, "sup")
		case gdoc.BaselineSubscript:
			tags = append(tags, "sub")
		}
	}

	// Links bring their own underline and color.
	var css strings.Builder
	if !linked && style.IsUnderline() {
		css.WriteString("text-decoration:underline;")
	}
	if style.IsSmallCaps() {
		css.WriteString("font-variant:small-caps;")
	}
	if style != nil {
		if !linked {
			writeColor(&css, "color", style.ForegroundColor)
		}
		writeColor(&css, "background-color", style.BackgroundColor)
	}
	if css.Len() > 0 {
		tags = append(tags, "span")
	}

	if linked {
		if !internal {
			href = r.convertURL(href)
		}
		r.w.StartTag("a", htmlwriter.Attr{Key: "href", Val: href})
	}
	for _, tag := range tags {
		if tag == "span" {
			r.w.StartTag(tag, htmlwriter.Attr{Key: "style", Val: css.String()})
		} else {
			r.w.StartTag(tag)
		}
	}

	r.content(run.Content)

	for i := len(tags) - 1; i >= 0; i-- {
		if err := r.w.EndTag(tags[i]); err != nil {
			return err
		}
	}
	if linked {
		return r.w.EndTag("a")
	}
	return nil
}

// content writes run text. The paragraph's own line feed is dropped and soft
// line breaks become <br>.
func (r *renderer) content(s string) {
	s = strings.TrimSuffix(s, "\n")
	for i, line := range strings.Split(s, softBreak) {
		if i > 0 {
			r.w.StartTag("br")
			r.w.Newline()
		}
		r.w.Text(line)
	}
}

// writeColor appends "name:rgb(R%,G%,B%);" when c is fully specified.
func writeColor(sb *strings.Builder, name string, c *gdoc.OptionalColor) {
	red, green, blue, ok := c.RGB()
	if !ok {
		return
	}
	sb.WriteString(name)
	sb.WriteString(":rgb(")
	sb.WriteString(percent(red))
	sb.WriteByte(',')
	sb.WriteString(percent(green))
	sb.WriteByte(',')
	sb.WriteString(percent(blue))
	sb.WriteString(");")
}

// percent formats a 0..1 channel as a percentage with at most two decimals.
func percent(v float64) string {
	v = math.Round(v*10000) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
