package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
)

func TestCropBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height float64
		crop          *gdoc.CropProperties
		want          ImageBox
	}{
		{
			name:  "no crop",
			width: 100, height: 50,
			want: ImageBox{Width: 100, Height: 50, ImageWidth: 100, ImageHeight: 50},
		},
		{
			name:  "zero offsets",
			width: 100, height: 50,
			crop: &gdoc.CropProperties{OffsetTop: ptr(0.0), OffsetBottom: ptr(0.0), OffsetLeft: ptr(0.0), OffsetRight: ptr(0.0)},
			want: ImageBox{Width: 100, Height: 50, ImageWidth: 100, ImageHeight: 50},
		},
		{
			name:  "horizontal crop",
			width: 100, height: 50,
			crop: &gdoc.CropProperties{OffsetLeft: ptr(0.25), OffsetRight: ptr(0.25)},
			want: ImageBox{Width: 100, Height: 50, ImageWidth: 200, ImageHeight: 50, MarginLeft: -50},
		},
		{
			name:  "vertical crop",
			width: 100, height: 50,
			crop: &gdoc.CropProperties{OffsetTop: ptr(0.5)},
			want: ImageBox{Width: 100, Height: 50, ImageWidth: 100, ImageHeight: 100, MarginTop: -50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CropBox(tt.width, tt.height, tt.crop)
			if err != nil {
				t.Fatalf("CropBox() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CropBox() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCropBox_HidesEverything(t *testing.T) {
	t.Parallel()

	_, err := CropBox(10, 10, &gdoc.CropProperties{OffsetLeft: ptr(0.5), OffsetRight: ptr(0.5)})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("CropBox() error = %v, want ErrInvalidDimension", err)
	}
}

func TestGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    *gdoc.Size
		wantErr error
	}{
		{"points", &gdoc.Size{Width: pt(75), Height: pt(37.5)}, nil},
		{"missing size", nil, ErrInvalidDimension},
		{"missing height", &gdoc.Size{Width: pt(75)}, ErrInvalidDimension},
		{"missing magnitude", &gdoc.Size{Width: &gdoc.Dimension{Unit: gdoc.UnitPT}, Height: pt(1)}, ErrInvalidDimension},
		{"unknown unit", &gdoc.Size{Width: &gdoc.Dimension{Magnitude: ptr(1.0), Unit: "EMU"}, Height: pt(1)}, ErrUnsupportedUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			box, err := Geometry(tt.size, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Geometry() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := box.WrapperStyle(nil); got != "display:inline-block;overflow:hidden;width:100.00px;height:50.00px;" {
				t.Errorf("WrapperStyle() = %q", got)
			}
		})
	}
}

func TestImageBoxStyles(t *testing.T) {
	t.Parallel()

	box := ImageBox{Width: 100, Height: 50, ImageWidth: 200, ImageHeight: 50, MarginLeft: -50}

	wantWrapper := "display:inline-block;overflow:hidden;width:100.00px;height:50.00px;transform:rotate(0.500rad) translateZ(0px);"
	if got := box.WrapperStyle(ptr(0.5)); got != wantWrapper {
		t.Errorf("WrapperStyle() = %q, want %q", got, wantWrapper)
	}

	wantImage := "transform:rotate(1.571rad) translateZ(0px);width:200.00px;height:50.00px;margin-left:-50.00px;margin-top:0.00px;"
	if got := box.ImageStyle(ptr(1.5708)); got != wantImage {
		t.Errorf("ImageStyle() = %q, want %q", got, wantImage)
	}
}

func imageDoc(obj *gdoc.EmbeddedObject) *gdoc.Document {
	d := doc(para(
		gdoc.ParagraphElement{InlineObjectElement: &gdoc.InlineObjectElement{InlineObjectID: "kix.1"}},
		text("\n"),
	))
	d.InlineObjects = map[string]gdoc.InlineObject{
		"kix.1": {ObjectID: "kix.1", InlineObjectProperties: &gdoc.InlineObjectProperties{EmbeddedObject: obj}},
	}
	return d
}

func TestRender_Image(t *testing.T) {
	t.Parallel()

	obj := &gdoc.EmbeddedObject{
		Description: "a cat",
		Size:        &gdoc.Size{Width: pt(75), Height: pt(37.5)},
		ImageProperties: &gdoc.ImageProperties{
			ContentURI:     "https://lh3.example/abc?x=1&y=2",
			CropProperties: &gdoc.CropProperties{OffsetLeft: ptr(0.25), OffsetRight: ptr(0.25)},
		},
	}

	tests := []struct {
		name string
		opts Options
		src  string
	}{
		{"content uri by default", Options{}, "https://lh3.example/abc?x=1&amp;y=2"},
		{"resolver", Options{Images: ImageResolverFunc(func(id, _ string) string {
			return "/images/" + id + ".png"
		})}, "/images/kix.1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mustRender(t, imageDoc(obj), tt.opts)
			want := page("\n<p>" +
				`<span style="display:inline-block;overflow:hidden;width:100.00px;height:50.00px;">` +
				`<img id="kix.1" src="` + tt.src + `" alt="a cat" ` +
				`style="width:200.00px;height:50.00px;margin-left:-50.00px;margin-top:0.00px;">` +
				"</span></p>\n")
			if got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
			assertBalanced(t, got)
		})
	}
}

func TestRender_ImageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		obj     *gdoc.EmbeddedObject
		wantErr error
	}{
		{
			name:    "drawing",
			obj:     &gdoc.EmbeddedObject{EmbeddedDrawingProperties: &gdoc.EmbeddedDrawingProperties{}, Size: &gdoc.Size{Width: pt(1), Height: pt(1)}},
			wantErr: ErrUnsupportedElement,
		},
		{
			name:    "unknown unit",
			obj:     &gdoc.EmbeddedObject{ImageProperties: &gdoc.ImageProperties{}, Size: &gdoc.Size{Width: &gdoc.Dimension{Magnitude: ptr(1.0), Unit: "MM"}, Height: pt(1)}},
			wantErr: ErrUnsupportedUnit,
		},
		{
			name:    "no size",
			obj:     &gdoc.EmbeddedObject{ImageProperties: &gdoc.ImageProperties{}},
			wantErr: ErrInvalidDimension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Render(imageDoc(tt.obj), Options{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
