package shortcode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Directive
	}{
		{"{{ html <hr> }}", Shortcode},
		{"  {{< youtube xyz >}}\n", Shortcode},
		{"{: .note }", AttributeList},
		{"{::}", AttributeList},
		{"{: .note", AttributeList},
		{"Some {{ text }} around", None},
		{"{{ unterminated", None},
		{"plain", None},
		{"", None},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "html passthrough",
			text: "{{ html <div class='bar'> }}",
			want: "<div class='bar'>\n",
		},
		{
			name: "html passthrough with angle spelling",
			text: "{{< html </div> >}}",
			want: "</div>\n",
		},
		{
			name: "third-party shortcode becomes comment",
			text: `{{ youtube id="xyz" }}`,
			want: `<!--{{< youtube id="xyz" >}}-->` + "\n",
		},
		{
			name: "angle spelling is canonicalized",
			text: `{{<   youtube   id="xyz"  >}}`,
			want: `<!--{{< youtube id="xyz" >}}-->` + "\n",
		},
		{
			name: "command without arguments",
			text: "{{ toc }}",
			want: "<!--{{< toc >}}-->\n",
		},
		{
			name: "smart quotes are normalized",
			text: "{{ html <a href=”/x” title=’t’> }}",
			want: "<a href=\"/x\" title='t'>\n",
		},
		{
			name: "several shortcodes in one paragraph",
			text: "{{ html <figure> }}{{ figure src=\"a.png\" }}{{ html </figure> }}",
			want: "<figure>\n<!--{{< figure src=\"a.png\" >}}-->\n</figure>\n",
		},
		{
			name: "leading text is discarded",
			text: "  {{ html <br> }}",
			want: "<br>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := htmlwriter.New()
			if err := Write(w, tt.text); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := w.String(); got != tt.want {
				t.Errorf("Write(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrite_EmptyCommand(t *testing.T) {
	t.Parallel()

	w := htmlwriter.New()
	if err := Write(w, "{{ }}"); !errors.Is(err, ErrEmptyShortcode) {
		t.Errorf("Write() error = %v, want ErrEmptyShortcode", err)
	}
}

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    *Attributes
		wantErr bool
	}{
		{
			name: "bare classes",
			text: "{: note wide }",
			want: &Attributes{Classes: []string{"note", "wide"}, Attrs: map[string]string{}},
		},
		{
			name: "dotted classes id and attributes",
			text: `{: .note #intro data-x="a b" lang=fr }`,
			want: &Attributes{
				ID:      "intro",
				Classes: []string{"note"},
				Attrs:   map[string]string{"data-x": "a b", "lang": "fr"},
			},
		},
		{
			name: "colon closing delimiter",
			text: "{: callout :}",
			want: &Attributes{Classes: []string{"callout"}, Attrs: map[string]string{}},
		},
		{
			name: "smart quoted value",
			text: "{: title=“hello world” }",
			want: &Attributes{Attrs: map[string]string{"title": "hello world"}},
		},
		{
			name: "close marker",
			text: " {::} ",
			want: nil,
		},
		{
			name:    "missing closing brace",
			text:    "{: note wide",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			text:    `{: title="oops }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAttributes(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrUnterminatedAttributes) {
					t.Fatalf("ParseAttributes() error = %v, want ErrUnterminatedAttributes", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAttributes() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAttributes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttributesHTML_SortedOrder(t *testing.T) {
	t.Parallel()

	a := &Attributes{
		ID:      "x",
		Classes: []string{"b", "a"},
		Attrs:   map[string]string{"zeta": "1", "alpha": "2", "mid": "3"},
	}
	want := []htmlwriter.Attr{
		{Key: "id", Val: "x"},
		{Key: "class", Val: "b a"},
		{Key: "alpha", Val: "2"},
		{Key: "mid", Val: "3"},
		{Key: "zeta", Val: "1"},
	}
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(want, a.HTML()); diff != "" {
			t.Fatalf("HTML() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestWriteAttributes(t *testing.T) {
	t.Parallel()

	w := htmlwriter.New()
	if err := WriteAttributes(w, "{: note }"); err != nil {
		t.Fatalf("WriteAttributes(open) error = %v", err)
	}
	w.Text("inside")
	if err := WriteAttributes(w, "{::}"); err != nil {
		t.Fatalf("WriteAttributes(close) error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "<div class=\"note\">\ninside\n</div>\n"
	if got := w.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	stray := htmlwriter.New()
	if err := WriteAttributes(stray, "{::}"); !errors.Is(err, htmlwriter.ErrTagMismatch) {
		t.Errorf("WriteAttributes(stray close) error = %v, want ErrTagMismatch", err)
	}
}
