package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-gdoc2html/internal/fileutil"
	"github.com/alnah/go-gdoc2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrMissingField    = errors.New("required field is missing")
	ErrDuplicatePage   = errors.New("duplicate page")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxNameLength       = 100  // Author name
	MaxDocIDLength      = 100  // Docs API IDs are 44 chars
	MaxSlugLength       = 200  // URL path segment
	MaxCategoryLength   = 100  // Hugo category
	MaxDateLength       = 30   // "31/12/2024 18:30:00" or "auto:YYYY-MM-DD"
	MaxDateFormatLength = 50   // Front matter date format
	MaxURLLength        = 2048 // Browser limit
	MaxPathLength       = 4096 // PATH_MAX on Linux
)

// Config holds all configuration for a site build.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Images ImagesConfig `yaml:"images"`
	Dates  DatesConfig  `yaml:"dates"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// SiteConfig lists the published documents.
type SiteConfig struct {
	DefaultAuthor string       `yaml:"defaultAuthor"`
	Pages         []PageConfig `yaml:"pages"`
}

// PageConfig describes one document of the site. Input files are matched
// to pages by their base name, which is either the document ID or the slug.
type PageConfig struct {
	ID       string `yaml:"id"`   // Docs API document ID
	Slug     string `yaml:"slug"` // Page slug, required
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
	Weight   *int   `yaml:"weight"`  // Order within the category
	Date     string `yaml:"date"`    // "31/12/2024 18:30:00", ISO or "auto"
	Lastmod  string `yaml:"lastmod"` // Same syntax as date
	Draft    bool   `yaml:"draft"`   // Skipped unless --all
}

// ImagesConfig defines where images are served from.
type ImagesConfig struct {
	BaseURL string `yaml:"baseURL"` // "/images" or "https://cdn.example.com"; empty = keep content URIs
}

// DatesConfig defines how front matter dates are written.
type DatesConfig struct {
	Format string `yaml:"format"` // Token format or preset (default: rfc3339)
}

// Validate checks field lengths and page uniqueness.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.defaultAuthor", c.Site.DefaultAuthor, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("images.baseURL", c.Images.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("dates.format", c.Dates.Format, MaxDateFormatLength); err != nil {
		return err
	}
	if u := c.Images.BaseURL; u != "" && !fileutil.IsURL(u) && !strings.HasPrefix(u, "/") {
		return fmt.Errorf("%w: images.baseURL %q must be an http(s) URL or start with /", ErrInvalidField, u)
	}

	ids := make(map[string]bool, len(c.Site.Pages))
	slugs := make(map[string]bool, len(c.Site.Pages))
	for i, p := range c.Site.Pages {
		field := fmt.Sprintf("site.pages[%d]", i)
		if err := p.validate(field); err != nil {
			return err
		}
		if p.ID != "" {
			if ids[p.ID] {
				return fmt.Errorf("%w: %s.id %q", ErrDuplicatePage, field, p.ID)
			}
			ids[p.ID] = true
		}
		if slugs[p.Slug] {
			return fmt.Errorf("%w: %s.slug %q", ErrDuplicatePage, field, p.Slug)
		}
		slugs[p.Slug] = true
	}

	return nil
}

func (p *PageConfig) validate(field string) error {
	if p.Slug == "" {
		return fmt.Errorf("%w: %s.slug", ErrMissingField, field)
	}
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"id", p.ID, MaxDocIDLength},
		{"slug", p.Slug, MaxSlugLength},
		{"author", p.Author, MaxNameLength},
		{"category", p.Category, MaxCategoryLength},
		{"date", p.Date, MaxDateLength},
		{"lastmod", p.Lastmod, MaxDateLength},
	}
	for _, c := range checks {
		if err := validateFieldLength(field+"."+c.name, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with no site pages.
func DefaultConfig() *Config {
	return &Config{}
}

// Slugs returns the document ID to slug table of the site.
func (c *Config) Slugs() map[string]string {
	slugs := make(map[string]string, len(c.Site.Pages))
	for _, p := range c.Site.Pages {
		if p.ID != "" {
			slugs[p.ID] = p.Slug
		}
	}
	return slugs
}

// Page returns the page whose document ID or slug is name.
func (c *Config) Page(name string) (*PageConfig, bool) {
	for i := range c.Site.Pages {
		p := &c.Site.Pages[i]
		if (p.ID != "" && p.ID == name) || p.Slug == name {
			return p, true
		}
	}
	return nil, false
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the files tried for a config name, in order:
// name.yaml and name.yml in the current directory, then in
// the go-gdoc2html directory of the user config dir.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-gdoc2html", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
