// Package gdoc2html converts Google Docs documents to HTML pages for a
// static site generator.
//
// # Quick Start
//
// Create a converter and convert the JSON document resource returned by
// the Docs API:
//
//	conv, err := gdoc2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, gdoc2html.Input{
//	    DocumentJSON: data,
//	    Slug:         "getting-started",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("getting-started.html", result.Page, 0644)
//
// result.Page holds YAML front matter followed by the HTML body;
// result.HTML is the body alone. Markdown can be converted the same way
// through Input.Markdown, which is imported into the document model first.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Decoding of the document JSON (or import of the Markdown)
//  2. Rendering to HTML: paragraphs, headings, nested lists, tables with
//     merged cells, cropped and rotated images, and {{ ... }} directives
//     written in the document text
//  3. Page tweaks on the parsed DOM: head removal, link rewriting, and
//     extraction of the title, summary and banner
//  4. Stable serialization, with attributes sorted so that unchanged
//     documents produce byte-identical pages
//
// # Directives
//
// A paragraph whose text is wrapped in double braces is a directive:
//
//	{{ html <div class="note"> }}   raw HTML, here an opening tag
//	{{ html </div> }}               the matching closing tag
//	{{ figure src="a.png" }}        any other command is a Hugo shortcode
//
// A paragraph starting with "{:" opens a <div> with the attributes it
// lists ({: .note #intro }); "{::}" closes it.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := gdoc2html.NewConverter(
//	    gdoc2html.WithSite(gdoc2html.Site{
//	        DefaultAuthor: "Editorial team",
//	        Pages:         map[string]string{"1AbC...": "getting-started"},
//	    }),
//	    gdoc2html.WithImageResolver(gdoc2html.ImageResolverFunc(
//	        func(id, src string) string { return "/images/" + id + ".png" },
//	    )),
//	    gdoc2html.WithDateFormat("iso"),
//	    gdoc2html.WithLogger(slog.Default()),
//	)
//
// Links to documents listed in Site.Pages become links to their pages;
// other document links are kept, reported in Result.Unresolved and logged.
package gdoc2html
