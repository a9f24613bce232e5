package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gdoc2html <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Google Docs documents and Markdown files to Hugo HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .json, .md or .markdown file, or a directory of them")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default: next to input)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -a, --all                   Also publish pages marked as draft")
	fmt.Fprintln(w, "      --author <s>            Default author of pages")
	fmt.Fprintln(w, "      --date-format <s>       Front matter dates: rfc3339 (default), a preset")
	fmt.Fprintln(w, "                              (iso, european, us, long, sheet) or tokens")
	fmt.Fprintln(w, "                              YYYY, YY, MMMM, MMM, MM, M, DD, D, hh, mm, ss")
	fmt.Fprintln(w, "      --image-base-url <s>    Serve images from this URL or /path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timings and debug logs")
	fmt.Fprintln(w, "      --version               Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input files are matched to site pages by document ID or slug.")
}
