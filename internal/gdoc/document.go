package gdoc

// Document is the root of a decoded document.
type Document struct {
	DocumentID    string                  `json:"documentId,omitempty"`
	Title         *string                 `json:"title,omitempty"`
	Body          *Body                   `json:"body,omitempty"`
	InlineObjects map[string]InlineObject `json:"inlineObjects,omitempty"`
	Footnotes     map[string]Footnote     `json:"footnotes,omitempty"`
}

// Body holds the top-level structural elements.
type Body struct {
	Content []StructuralElement `json:"content,omitempty"`
}

// Footnote is the content of a footnote, referenced by FootnoteReference.
type Footnote struct {
	FootnoteID string              `json:"footnoteId,omitempty"`
	Content    []StructuralElement `json:"content,omitempty"`
}

// InlineObject wraps the properties of an object anchored in the text flow.
type InlineObject struct {
	ObjectID               string                  `json:"objectId,omitempty"`
	InlineObjectProperties *InlineObjectProperties `json:"inlineObjectProperties,omitempty"`
}

// InlineObjectProperties wraps the embedded object.
type InlineObjectProperties struct {
	EmbeddedObject *EmbeddedObject `json:"embeddedObject,omitempty"`
}

// EmbeddedObject is an image or a drawing. Only images are rendered.
type EmbeddedObject struct {
	Title                     string                     `json:"title,omitempty"`
	Description               string                     `json:"description,omitempty"`
	Size                      *Size                      `json:"size,omitempty"`
	ImageProperties           *ImageProperties           `json:"imageProperties,omitempty"`
	EmbeddedDrawingProperties *EmbeddedDrawingProperties `json:"embeddedDrawingProperties,omitempty"`
}

// EmbeddedDrawingProperties carries no usable data in the API.
type EmbeddedDrawingProperties struct{}

// ImageProperties describes an image and how it is cropped and rotated.
type ImageProperties struct {
	ContentURI     string          `json:"contentUri,omitempty"`
	SourceURI      string          `json:"sourceUri,omitempty"`
	Angle          *float64        `json:"angle,omitempty"`
	CropProperties *CropProperties `json:"cropProperties,omitempty"`
}

// CropProperties are the fractions of the original image hidden on each
// side, plus a rotation of the cropped region in radians.
type CropProperties struct {
	OffsetTop    *float64 `json:"offsetTop,omitempty"`
	OffsetBottom *float64 `json:"offsetBottom,omitempty"`
	OffsetLeft   *float64 `json:"offsetLeft,omitempty"`
	OffsetRight  *float64 `json:"offsetRight,omitempty"`
	Angle        *float64 `json:"angle,omitempty"`
}

// Size is a width and height pair.
type Size struct {
	Width  *Dimension `json:"width,omitempty"`
	Height *Dimension `json:"height,omitempty"`
}

// Dimension is a magnitude in a unit. The API only emits "PT".
type Dimension struct {
	Magnitude *float64 `json:"magnitude,omitempty"`
	Unit      string   `json:"unit,omitempty"`
}

// UnitPT is the only unit the API uses for dimensions.
const UnitPT = "PT"

// Paragraph is a run of content terminated by a newline.
type Paragraph struct {
	Elements       []ParagraphElement `json:"elements,omitempty"`
	ParagraphStyle *ParagraphStyle    `json:"paragraphStyle,omitempty"`
	Bullet         *Bullet            `json:"bullet,omitempty"`
}

// Named style types.
const (
	StyleNormalText = "NORMAL_TEXT"
	StyleTitle      = "TITLE"
	StyleSubtitle   = "SUBTITLE"
	StyleHeading1   = "HEADING_1"
	StyleHeading2   = "HEADING_2"
	StyleHeading3   = "HEADING_3"
	StyleHeading4   = "HEADING_4"
	StyleHeading5   = "HEADING_5"
	StyleHeading6   = "HEADING_6"
)

// Paragraph alignments.
const (
	AlignStart     = "START"
	AlignCenter    = "CENTER"
	AlignEnd       = "END"
	AlignJustified = "JUSTIFIED"
)

// ParagraphStyle is the subset of paragraph styling the renderer reads.
type ParagraphStyle struct {
	NamedStyleType string     `json:"namedStyleType,omitempty"`
	Alignment      string     `json:"alignment,omitempty"`
	IndentStart    *Dimension `json:"indentStart,omitempty"`
	HeadingID      string     `json:"headingId,omitempty"`
}

// Bullet marks a paragraph as a list item.
type Bullet struct {
	ListID       string `json:"listId,omitempty"`
	NestingLevel *int   `json:"nestingLevel,omitempty"`
}

// Level returns the 0-based nesting level. The API omits level 0.
func (b *Bullet) Level() int {
	if b == nil || b.NestingLevel == nil {
		return 0
	}
	return *b.NestingLevel
}

// TextRun is a run of text sharing one style.
type TextRun struct {
	Content   string     `json:"content,omitempty"`
	TextStyle *TextStyle `json:"textStyle,omitempty"`
}

// Baseline offsets.
const (
	BaselineUnspecified = "BASELINE_OFFSET_UNSPECIFIED"
	BaselineNone        = "NONE"
	BaselineSuperscript = "SUPERSCRIPT"
	BaselineSubscript   = "SUBSCRIPT"
)

// TextStyle is the subset of character styling the renderer reads.
type TextStyle struct {
	Bold            *bool          `json:"bold,omitempty"`
	Italic          *bool          `json:"italic,omitempty"`
	Underline       *bool          `json:"underline,omitempty"`
	Strikethrough   *bool          `json:"strikethrough,omitempty"`
	SmallCaps       *bool          `json:"smallCaps,omitempty"`
	BaselineOffset  string         `json:"baselineOffset,omitempty"`
	ForegroundColor *OptionalColor `json:"foregroundColor,omitempty"`
	BackgroundColor *OptionalColor `json:"backgroundColor,omitempty"`
	Link            *Link          `json:"link,omitempty"`
}

// IsBold reports whether bold is set to true.
func (s *TextStyle) IsBold() bool { return s != nil && isTrue(s.Bold) }

// IsItalic reports whether italic is set to true.
func (s *TextStyle) IsItalic() bool { return s != nil && isTrue(s.Italic) }

// IsUnderline reports whether underline is set to true.
func (s *TextStyle) IsUnderline() bool { return s != nil && isTrue(s.Underline) }

// IsStrikethrough reports whether strikethrough is set to true.
func (s *TextStyle) IsStrikethrough() bool { return s != nil && isTrue(s.Strikethrough) }

// IsSmallCaps reports whether small caps is set to true.
func (s *TextStyle) IsSmallCaps() bool { return s != nil && isTrue(s.SmallCaps) }

func isTrue(b *bool) bool { return b != nil && *b }

// OptionalColor is opaque when Color is set and transparent otherwise.
type OptionalColor struct {
	Color *Color `json:"color,omitempty"`
}

// Color wraps an RGB value.
type Color struct {
	RGBColor *RGBColor `json:"rgbColor,omitempty"`
}

// RGBColor channels are in the 0..1 range.
type RGBColor struct {
	Red   *float64 `json:"red,omitempty"`
	Green *float64 `json:"green,omitempty"`
	Blue  *float64 `json:"blue,omitempty"`
}

// RGB returns the three channels if they are all present.
func (c *OptionalColor) RGB() (r, g, b float64, ok bool) {
	if c == nil || c.Color == nil || c.Color.RGBColor == nil {
		return 0, 0, 0, false
	}
	rgb := c.Color.RGBColor
	if rgb.Red == nil || rgb.Green == nil || rgb.Blue == nil {
		return 0, 0, 0, false
	}
	return *rgb.Red, *rgb.Green, *rgb.Blue, true
}

// Link is the target of a hyperlink: an external URL, a heading or a bookmark.
type Link struct {
	URL        string `json:"url,omitempty"`
	HeadingID  string `json:"headingId,omitempty"`
	BookmarkID string `json:"bookmarkId,omitempty"`
}

// Target returns the href for the link and whether it is a document-internal
// anchor. URL wins over heading, heading over bookmark.
func (l *Link) Target() (href string, internal bool) {
	switch {
	case l == nil:
		return "", false
	case l.URL != "":
		return l.URL, false
	case l.HeadingID != "":
		return "#" + l.HeadingID, true
	case l.BookmarkID != "":
		return "#" + l.BookmarkID, true
	}
	return "", false
}

// AutoText is a page number or similar generated text.
type AutoText struct {
	Type string `json:"type,omitempty"`
}

// PageBreak forces a page break.
type PageBreak struct{}

// ColumnBreak forces a column break.
type ColumnBreak struct{}

// HorizontalRule is a horizontal line.
type HorizontalRule struct{}

// Equation is an equation. Its content is not exposed by the API.
type Equation struct{}

// FootnoteReference points to an entry of Document.Footnotes.
type FootnoteReference struct {
	FootnoteID     string `json:"footnoteId,omitempty"`
	FootnoteNumber string `json:"footnoteNumber,omitempty"`
}

// InlineObjectElement points to an entry of Document.InlineObjects.
type InlineObjectElement struct {
	InlineObjectID string `json:"inlineObjectId,omitempty"`
}

// Person is a mention of a person.
type Person struct {
	PersonID         string            `json:"personId,omitempty"`
	PersonProperties *PersonProperties `json:"personProperties,omitempty"`
}

// PersonProperties holds the display data of a mention.
type PersonProperties struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// DisplayName returns the name, or the email when the name is unknown.
func (p *Person) DisplayName() string {
	if p == nil || p.PersonProperties == nil {
		return ""
	}
	if p.PersonProperties.Name != "" {
		return p.PersonProperties.Name
	}
	return p.PersonProperties.Email
}

// RichLink is a smart chip pointing to a Google resource.
type RichLink struct {
	RichLinkID         string              `json:"richLinkId,omitempty"`
	RichLinkProperties *RichLinkProperties `json:"richLinkProperties,omitempty"`
}

// RichLinkProperties holds the title and URI of a rich link.
type RichLinkProperties struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// SectionBreak starts a new section. Column layout is not rendered.
type SectionBreak struct{}

// TableOfContents wraps generated content.
type TableOfContents struct {
	Content []StructuralElement `json:"content,omitempty"`
}

// Table is a grid of cells. Merged cells are still present in TableCells.
type Table struct {
	Rows      int        `json:"rows,omitempty"`
	Columns   int        `json:"columns,omitempty"`
	TableRows []TableRow `json:"tableRows,omitempty"`
}

// TableRow is a row of cells.
type TableRow struct {
	TableCells []TableCell `json:"tableCells,omitempty"`
}

// TableCell holds structural content and span information.
type TableCell struct {
	Content        []StructuralElement `json:"content,omitempty"`
	TableCellStyle *TableCellStyle     `json:"tableCellStyle,omitempty"`
}

// TableCellStyle carries merge spans; absent spans mean 1.
type TableCellStyle struct {
	RowSpan    *int `json:"rowSpan,omitempty"`
	ColumnSpan *int `json:"columnSpan,omitempty"`
}

// Spans returns the column and row spans, defaulting to 1.
func (c *TableCell) Spans() (colspan, rowspan int) {
	colspan, rowspan = 1, 1
	if c.TableCellStyle == nil {
		return colspan, rowspan
	}
	if s := c.TableCellStyle.ColumnSpan; s != nil && *s > 1 {
		colspan = *s
	}
	if s := c.TableCellStyle.RowSpan; s != nil && *s > 1 {
		rowspan = *s
	}
	return colspan, rowspan
}
