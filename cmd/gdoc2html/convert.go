package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	gdoc2html "github.com/alnah/go-gdoc2html"
	"github.com/alnah/go-gdoc2html/internal/config"
)

// contentHost serves the images of exported documents.
const contentHost = "googleusercontent.com"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, logger *slog.Logger, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoDocuments, inputPath)
	}
	files = planPages(files, cfg, flags.site.all, logger)

	conv, err := newConverter(cfg, logger, env)
	if err != nil {
		return err
	}

	workers := gdoc2html.ResolveWorkers(flags.workers)
	logger.Debug("starting conversion", "documents", len(files), "workers", workers)

	results := convertBatch(ctx, conv, workers, files)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return newBatchError(results)
	}
	return nil
}

// mergeFlags applies CLI overrides to the config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.site.author != "" {
		cfg.Site.DefaultAuthor = flags.site.author
	}
	if flags.site.dateFormat != "" {
		cfg.Dates.Format = flags.site.dateFormat
	}
	if flags.site.imageBaseURL != "" {
		cfg.Images.BaseURL = flags.site.imageBaseURL
	}
}

// newConverter builds the shared converter for the batch.
func newConverter(cfg *config.Config, logger *slog.Logger, env *Environment) (*gdoc2html.Converter, error) {
	opts := []gdoc2html.Option{
		gdoc2html.WithSite(gdoc2html.Site{
			DefaultAuthor: cfg.Site.DefaultAuthor,
			Pages:         cfg.Slugs(),
		}),
		gdoc2html.WithLogger(logger),
	}
	if env.Now != nil {
		opts = append(opts, gdoc2html.WithClock(env.Now))
	}
	if cfg.Dates.Format != "" {
		opts = append(opts, gdoc2html.WithDateFormat(cfg.Dates.Format))
	}
	if cfg.Images.BaseURL != "" {
		opts = append(opts, gdoc2html.WithImageResolver(imageResolver(cfg.Images.BaseURL)))
	}
	return gdoc2html.NewConverter(opts...)
}

// imageResolver serves document images from baseURL. Content URIs end with
// an opaque image name that is kept; other sources are left unchanged.
func imageResolver(baseURL string) gdoc2html.ImageResolverFunc {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return func(_, src string) string {
		u, err := url.Parse(src)
		if err != nil || !strings.HasSuffix(u.Hostname(), contentHost) {
			return src
		}
		name := path.Base(u.Path)
		if name == "/" || name == "." {
			return src
		}
		return baseURL + "/" + name
	}
}
