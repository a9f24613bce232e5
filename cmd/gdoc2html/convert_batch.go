package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gdoc2html "github.com/alnah/go-gdoc2html"
	"github.com/alnah/go-gdoc2html/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadDocument = errors.New("failed to read document")
	ErrWritePage    = errors.New("failed to write page")
	ErrOutputDir    = errors.New("failed to create output directory")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input gdoc2html.Input) (*gdoc2html.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*gdoc2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Unchanged  bool // Page already held the same content
}

// convertBatch processes files concurrently. The converter is shared by
// all workers.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Go(func() {
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		})
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadDocument, err))
	}

	input := pageInput(f)
	switch f.Kind {
	case sourceMarkdown:
		input.Markdown = string(content)
	default:
		input.DocumentJSON = content
	}

	page, err := conv.Convert(ctx, input)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrOutputDir, err))
	}

	// #nosec G306 -- pages are meant to be readable by the site generator
	written, err := fileutil.WriteFile(f.OutputPath, page.Page, filePermissions)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWritePage, err))
	}

	result.Unchanged = !written
	result.Duration = time.Since(start)
	return result
}

// pageInput returns the conversion input for the metadata of a file.
// Unlisted files get no slug; Hugo then uses the file name.
func pageInput(f FileToConvert) gdoc2html.Input {
	if f.Page == nil {
		return gdoc2html.Input{}
	}
	return gdoc2html.Input{
		Slug:     f.Page.Slug,
		Author:   f.Page.Author,
		Date:     f.Page.Date,
		Lastmod:  f.Page.Lastmod,
		Category: f.Page.Category,
		Weight:   f.Page.Weight,
	}
}

// ResultSummary holds the count of conversions per outcome.
type ResultSummary struct {
	Succeeded int
	Unchanged int
	Failed    int
}

// countResults tallies conversions per outcome. Unchanged pages also count
// as succeeded.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Unchanged:
			summary.Succeeded++
			summary.Unchanged++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed conversions.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		status := "Created"
		if r.Unchanged {
			status = "Unchanged"
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s %s -> %s (%v)\n", status, r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", status, r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded (%d unchanged), %d failed\n", summary.Succeeded, summary.Unchanged, summary.Failed)
	}

	return summary.Failed
}

// batchError reports the failed documents of a batch. Each failure was
// already printed; the error only carries the count and the causes.
type batchError struct {
	failed int
	total  int
	errs   []error
}

func newBatchError(results []ConversionResult) *batchError {
	e := &batchError{total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			e.failed++
			e.errs = append(e.errs, r.Err)
		}
	}
	return e
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d document(s) failed", e.failed, e.total)
}

// Unwrap exposes the causes to errors.Is.
func (e *batchError) Unwrap() []error {
	return e.errs
}
