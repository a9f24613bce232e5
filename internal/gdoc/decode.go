package gdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for document decoding.
var (
	ErrDecode           = errors.New("failed to decode document")
	ErrEmptyVariant     = errors.New("no variant populated")
	ErrAmbiguousVariant = errors.New("more than one variant populated")
)

// MaxDocumentSize limits the JSON input read by Decode (default 64MB).
var MaxDocumentSize int64 = 64 << 20

// Decode reads a JSON document resource.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(io.LimitReader(r, MaxDocumentSize))
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &doc, nil
}

// InlineImage returns the embedded object referenced by id.
func (d *Document) InlineImage(id string) (*EmbeddedObject, bool) {
	obj, ok := d.InlineObjects[id]
	if !ok || obj.InlineObjectProperties == nil || obj.InlineObjectProperties.EmbeddedObject == nil {
		return nil, false
	}
	return obj.InlineObjectProperties.EmbeddedObject, true
}

// TitleText returns the document title or an empty string.
func (d *Document) TitleText() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}
