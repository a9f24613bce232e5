package htmlwriter

import (
	"errors"
	"testing"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(w *Writer) error
		want  string
	}{
		{
			name: "nested elements",
			write: func(w *Writer) error {
				w.StartTag("p")
				w.StartTag("em")
				w.Text("hi")
				if err := w.EndTag("em"); err != nil {
					return err
				}
				return w.EndTag("p")
			},
			want: "<p><em>hi</em></p>",
		},
		{
			name: "attributes in given order and escaped",
			write: func(w *Writer) error {
				w.StartTag("a", Attr{"href", `/x?a=1&b="2"`}, Attr{"class", "k"})
				return w.EndTag("a")
			},
			want: `<a href="/x?a=1&amp;b=&quot;2&quot;" class="k"></a>`,
		},
		{
			name: "empty attribute key skipped",
			write: func(w *Writer) error {
				w.StartTag("div", Attr{}, Attr{"id", "x"})
				return w.EndTag("div")
			},
			want: `<div id="x"></div>`,
		},
		{
			name: "void element is not pushed",
			write: func(w *Writer) error {
				w.StartTag("p")
				w.StartTag("br")
				w.StartTag("img", Attr{"src", "a.png"})
				return w.EndTag("p")
			},
			want: `<p><br><img src="a.png"></p>`,
		},
		{
			name: "text escaping",
			write: func(w *Writer) error {
				w.Text("a < b && c > d\u00a0e \"q\"")
				return nil
			},
			want: `a &lt; b &amp;&amp; c &gt; d&nbsp;e "q"`,
		},
		{
			name: "raw text element content is not escaped",
			write: func(w *Writer) error {
				w.StartTag("style")
				w.Text("a > b { color: red }")
				return w.EndTag("style")
			},
			want: "<style>a > b { color: red }</style>",
		},
		{
			name: "raw and comment are verbatim",
			write: func(w *Writer) error {
				w.Raw("<div class='bar'>")
				w.Comment(`{{< youtube id="xyz" >}}`)
				return nil
			},
			want: `<div class='bar'><!--{{< youtube id="xyz" >}}-->`,
		},
		{
			name: "newline is not doubled",
			write: func(w *Writer) error {
				w.Newline()
				w.Raw("x")
				w.Newline()
				w.Newline()
				return nil
			},
			want: "x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := New()
			if err := tt.write(w); err != nil {
				t.Fatalf("write error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if got := w.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriter_Balance(t *testing.T) {
	t.Parallel()

	t.Run("mismatched end tag", func(t *testing.T) {
		t.Parallel()

		w := New()
		w.StartTag("ul")
		w.StartTag("li")
		if err := w.EndTag("ul"); !errors.Is(err, ErrTagMismatch) {
			t.Errorf("EndTag(ul) error = %v, want ErrTagMismatch", err)
		}
		if got := w.Depth(); got != 2 {
			t.Errorf("Depth() = %d, want 2", got)
		}
	})

	t.Run("end tag with nothing open", func(t *testing.T) {
		t.Parallel()

		w := New()
		if err := w.EndTag("div"); !errors.Is(err, ErrTagMismatch) {
			t.Errorf("EndTag(div) error = %v, want ErrTagMismatch", err)
		}
		if got := w.String(); got != "" {
			t.Errorf("failed EndTag wrote %q", got)
		}
	})

	t.Run("unclosed elements", func(t *testing.T) {
		t.Parallel()

		w := New()
		w.StartTag("div")
		w.StartTag("p")
		if got := w.Current(); got != "p" {
			t.Errorf("Current() = %q, want p", got)
		}
		if err := w.Close(); !errors.Is(err, ErrUnclosedTags) {
			t.Errorf("Close() error = %v, want ErrUnclosedTags", err)
		}
	})
}
