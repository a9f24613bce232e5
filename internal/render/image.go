package render

import (
	"fmt"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// pixelsPerPoint converts points (1/72 in) to CSS pixels (1/96 in).
const pixelsPerPoint = 1 / 0.75

// ImageBox is the layout of a cropped image in CSS pixels. The wrapper has
// the visible size; the image inside is scaled so the uncropped region
// fills the wrapper and shifted by the negative margins.
type ImageBox struct {
	Width       float64
	Height      float64
	ImageWidth  float64
	ImageHeight float64
	MarginLeft  float64
	MarginTop   float64
}

// PointsToPixels converts a dimension to CSS pixels.
func PointsToPixels(d *gdoc.Dimension) (float64, error) {
	if d == nil || d.Magnitude == nil {
		return 0, fmt.Errorf("%w: missing magnitude", ErrInvalidDimension)
	}
	if d.Unit != gdoc.UnitPT {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, d.Unit)
	}
	return *d.Magnitude * pixelsPerPoint, nil
}

// Geometry computes the box of an image of the given visible size.
func Geometry(size *gdoc.Size, crop *gdoc.CropProperties) (ImageBox, error) {
	if size == nil {
		return ImageBox{}, fmt.Errorf("%w: missing size", ErrInvalidDimension)
	}
	width, err := PointsToPixels(size.Width)
	if err != nil {
		return ImageBox{}, fmt.Errorf("width: %w", err)
	}
	height, err := PointsToPixels(size.Height)
	if err != nil {
		return ImageBox{}, fmt.Errorf("height: %w", err)
	}
	return CropBox(width, height, crop)
}

// CropBox computes the box of an image whose visible size is width by
// height pixels. Offsets are the fractions of the original hidden on each
// side.
func CropBox(width, height float64, crop *gdoc.CropProperties) (ImageBox, error) {
	var top, bottom, left, right float64
	if crop != nil {
		top = valueOr(crop.OffsetTop)
		bottom = valueOr(crop.OffsetBottom)
		left = valueOr(crop.OffsetLeft)
		right = valueOr(crop.OffsetRight)
	}
	visibleX := 1 - left - right
	visibleY := 1 - top - bottom
	if visibleX <= 0 || visibleY <= 0 {
		return ImageBox{}, fmt.Errorf("%w: crop hides the whole image", ErrInvalidDimension)
	}

	box := ImageBox{
		Width:       width,
		Height:      height,
		ImageWidth:  width / visibleX,
		ImageHeight: height / visibleY,
	}
	box.MarginLeft = positiveZero(-box.ImageWidth * left)
	box.MarginTop = positiveZero(-box.ImageHeight * top)
	return box, nil
}

// WrapperStyle is the style of the clipping span.
func (b ImageBox) WrapperStyle(angle *float64) string {
	s := fmt.Sprintf("display:inline-block;overflow:hidden;width:%.2fpx;height:%.2fpx;", b.Width, b.Height)
	return s + rotation(angle)
}

// ImageStyle is the style of the img element.
func (b ImageBox) ImageStyle(angle *float64) string {
	return rotation(angle) + fmt.Sprintf("width:%.2fpx;height:%.2fpx;margin-left:%.2fpx;margin-top:%.2fpx;",
		b.ImageWidth, b.ImageHeight, b.MarginLeft, b.MarginTop)
}

func rotation(angle *float64) string {
	if angle == nil {
		return ""
	}
	return fmt.Sprintf("transform:rotate(%.3frad) translateZ(0px);", *angle)
}

func valueOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// positiveZero turns -0 into 0 so that it prints as "0.00".
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func (r *renderer) inlineObject(elt *gdoc.InlineObjectElement, index int) error {
	id := elt.InlineObjectID
	obj, ok := r.doc.InlineImage(id)
	if !ok {
		return fmt.Errorf("%w: %q at index %d", ErrDanglingReference, id, index)
	}
	img := obj.ImageProperties
	if img == nil {
		return fmt.Errorf("%w: embedded drawing %q at index %d", ErrUnsupportedElement, id, index)
	}

	var crop *gdoc.CropProperties
	var cropAngle *float64
	if img.CropProperties != nil {
		crop = img.CropProperties
		cropAngle = crop.Angle
	}
	box, err := Geometry(obj.Size, crop)
	if err != nil {
		return fmt.Errorf("inline object %q: %w", id, err)
	}

	src := img.ContentURI
	if r.opts.Images != nil {
		src = r.opts.Images.ResolveImage(id, src)
	}

	r.w.StartTag("span", htmlwriter.Attr{Key: "style", Val: box.WrapperStyle(img.Angle)})
	r.w.StartTag("img",
		htmlwriter.Attr{Key: "id", Val: id},
		htmlwriter.Attr{Key: "src", Val: src},
		htmlwriter.Attr{Key: nonEmpty("alt", obj.Description), Val: obj.Description},
		htmlwriter.Attr{Key: "style", Val: box.ImageStyle(cropAngle)},
	)
	return r.w.EndTag("span")
}
