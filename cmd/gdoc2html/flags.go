package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags override the site section of the config.
type siteFlags struct {
	author       string
	dateFormat   string
	imageBaseURL string
	all          bool // Publish drafts too
}

// convertFlags holds all flags of the command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	site    siteFlags
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addSiteFlags adds the site override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.author, "author", "", "default author of pages")
	fs.StringVar(&f.dateFormat, "date-format", "", "front matter date format (tokens, preset or rfc3339)")
	fs.StringVar(&f.imageBaseURL, "image-base-url", "", "serve images from this URL or path")
	fs.BoolVarP(&f.all, "all", "a", false, "also publish pages marked as draft")
}

// parseFlags parses the command line, without the program name.
// Usage is written to stderr on -h and on errors.
func parseFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("gdoc2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
