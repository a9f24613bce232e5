package gdoc

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the populated variant of a union element.
type Kind int

// Structural element kinds.
const (
	KindInvalid Kind = iota
	KindParagraph
	KindTable
	KindSectionBreak
	KindTableOfContents

	// Paragraph element kinds.
	KindTextRun
	KindAutoText
	KindPageBreak
	KindColumnBreak
	KindFootnoteReference
	KindHorizontalRule
	KindEquation
	KindInlineObject
	KindPerson
	KindRichLink
)

var kindNames = map[Kind]string{
	KindInvalid:           "invalid",
	KindParagraph:         "paragraph",
	KindTable:             "table",
	KindSectionBreak:      "sectionBreak",
	KindTableOfContents:   "tableOfContents",
	KindTextRun:           "textRun",
	KindAutoText:          "autoText",
	KindPageBreak:         "pageBreak",
	KindColumnBreak:       "columnBreak",
	KindFootnoteReference: "footnoteReference",
	KindHorizontalRule:    "horizontalRule",
	KindEquation:          "equation",
	KindInlineObject:      "inlineObjectElement",
	KindPerson:            "person",
	KindRichLink:          "richLink",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// StructuralElement is one of Paragraph, Table, SectionBreak or
// TableOfContents.
type StructuralElement struct {
	StartIndex      int              `json:"startIndex,omitempty"`
	EndIndex        int              `json:"endIndex,omitempty"`
	Paragraph       *Paragraph       `json:"paragraph,omitempty"`
	Table           *Table           `json:"table,omitempty"`
	SectionBreak    *SectionBreak    `json:"sectionBreak,omitempty"`
	TableOfContents *TableOfContents `json:"tableOfContents,omitempty"`
}

// Kind returns the populated variant, or KindInvalid when zero or several
// variants are set.
func (e *StructuralElement) Kind() Kind {
	return single(
		variant{e.Paragraph != nil, KindParagraph},
		variant{e.Table != nil, KindTable},
		variant{e.SectionBreak != nil, KindSectionBreak},
		variant{e.TableOfContents != nil, KindTableOfContents},
	)
}

// UnmarshalJSON decodes the element and checks that exactly one variant is set.
func (e *StructuralElement) UnmarshalJSON(data []byte) error {
	type plain StructuralElement
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = StructuralElement(p)
	return checkVariants("structural element", e.StartIndex, map[string]bool{
		"paragraph":       e.Paragraph != nil,
		"table":           e.Table != nil,
		"sectionBreak":    e.SectionBreak != nil,
		"tableOfContents": e.TableOfContents != nil,
	})
}

// ParagraphElement is one of the inline variants of a paragraph.
type ParagraphElement struct {
	StartIndex          int                  `json:"startIndex,omitempty"`
	EndIndex            int                  `json:"endIndex,omitempty"`
	TextRun             *TextRun             `json:"textRun,omitempty"`
	AutoText            *AutoText            `json:"autoText,omitempty"`
	PageBreak           *PageBreak           `json:"pageBreak,omitempty"`
	ColumnBreak         *ColumnBreak         `json:"columnBreak,omitempty"`
	FootnoteReference   *FootnoteReference   `json:"footnoteReference,omitempty"`
	HorizontalRule      *HorizontalRule      `json:"horizontalRule,omitempty"`
	Equation            *Equation            `json:"equation,omitempty"`
	InlineObjectElement *InlineObjectElement `json:"inlineObjectElement,omitempty"`
	Person              *Person              `json:"person,omitempty"`
	RichLink            *RichLink            `json:"richLink,omitempty"`
}

// Kind returns the populated variant, or KindInvalid when zero or several
// variants are set.
func (e *ParagraphElement) Kind() Kind {
	return single(
		variant{e.TextRun != nil, KindTextRun},
		variant{e.AutoText != nil, KindAutoText},
		variant{e.PageBreak != nil, KindPageBreak},
		variant{e.ColumnBreak != nil, KindColumnBreak},
		variant{e.FootnoteReference != nil, KindFootnoteReference},
		variant{e.HorizontalRule != nil, KindHorizontalRule},
		variant{e.Equation != nil, KindEquation},
		variant{e.InlineObjectElement != nil, KindInlineObject},
		variant{e.Person != nil, KindPerson},
		variant{e.RichLink != nil, KindRichLink},
	)
}

// UnmarshalJSON decodes the element and checks that exactly one variant is set.
func (e *ParagraphElement) UnmarshalJSON(data []byte) error {
	type plain ParagraphElement
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ParagraphElement(p)
	return checkVariants("paragraph element", e.StartIndex, map[string]bool{
		"textRun":             e.TextRun != nil,
		"autoText":            e.AutoText != nil,
		"pageBreak":           e.PageBreak != nil,
		"columnBreak":         e.ColumnBreak != nil,
		"footnoteReference":   e.FootnoteReference != nil,
		"horizontalRule":      e.HorizontalRule != nil,
		"equation":            e.Equation != nil,
		"inlineObjectElement": e.InlineObjectElement != nil,
		"person":              e.Person != nil,
		"richLink":            e.RichLink != nil,
	})
}

type variant struct {
	set  bool
	kind Kind
}

func single(variants ...variant) Kind {
	found := KindInvalid
	for _, v := range variants {
		if !v.set {
			continue
		}
		if found != KindInvalid {
			return KindInvalid
		}
		found = v.kind
	}
	return found
}

func checkVariants(what string, index int, set map[string]bool) error {
	var names []string
	for name, ok := range set {
		if ok {
			names = append(names, name)
		}
	}
	switch len(names) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%w: %s at index %d", ErrEmptyVariant, what, index)
	default:
		slices.Sort(names)
		return fmt.Errorf("%w: %s at index %d has %s", ErrAmbiguousVariant, what, index, strings.Join(names, ", "))
	}
}
