package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gdoc2html "github.com/alnah/go-gdoc2html"
	"github.com/alnah/go-gdoc2html/internal/config"
	"github.com/alnah/go-gdoc2html/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoDocuments        = errors.New("no documents found")
	ErrInvalidExtension   = errors.New("file must have .json, .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// pageExtension is the extension of written pages.
const pageExtension = "html"

// sourceKind tells how a discovered file is read.
type sourceKind int

const (
	sourceDocument sourceKind = iota // Docs API JSON resource
	sourceMarkdown
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Kind       sourceKind
	Page       *config.PageConfig // Nil when the file is not listed in the site
}

// kindOf returns the source kind for a file extension.
func kindOf(path string) (sourceKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return sourceDocument, true
	case ".md", ".markdown":
		return sourceMarkdown, true
	}
	return 0, false
}

// discoverFiles finds all documents to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		kind, ok := kindOf(inputPath)
		if !ok {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "")
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath, Kind: kind}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := kindOf(path)
		if !ok {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Kind: kind})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the page path for a document. Without an
// output directory the page is written next to its source; otherwise the
// layout below baseInputDir is mirrored.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, pageExtension)
	}

	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), pageExtension)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}

// baseName returns the file name without its extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// planPages matches files to site pages and drops drafts unless all is set.
// A listed page is written as <slug>.html.
func planPages(files []FileToConvert, cfg *config.Config, all bool, logger *slog.Logger) []FileToConvert {
	planned := make([]FileToConvert, 0, len(files))
	for _, f := range files {
		page, ok := cfg.Page(baseName(f.InputPath))
		if !ok {
			if len(cfg.Site.Pages) > 0 {
				logger.Debug("document not listed in site", "path", f.InputPath)
			}
			planned = append(planned, f)
			continue
		}
		if page.Draft && !all {
			logger.Info("skipping draft", "slug", page.Slug, "path", f.InputPath)
			continue
		}
		f.Page = page
		f.OutputPath = filepath.Join(filepath.Dir(f.OutputPath), page.Slug+"."+pageExtension)
		planned = append(planned, f)
	}
	return planned
}

// resolveInputPath returns the positional input, or the config default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the output flag, or the config default.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > gdoc2html.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, gdoc2html.MaxWorkers)
	}
	return nil
}
