// Package yamlutil wraps YAML parsing to isolate the external dependency.
// It reads configuration files and writes page front matter.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// Fence delimits front matter at the top of a page.
const Fence = "---\n"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// MarshalFrontMatter encodes v between fences.
func MarshalFrontMatter(v any) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+2*len(Fence))
	out = append(out, Fence...)
	out = append(out, data...)
	out = append(out, Fence...)
	return out, nil
}

// SplitFrontMatter returns the YAML between the fences at the top of page
// and what follows the closing fence. ok is false when page has no front
// matter.
func SplitFrontMatter(page []byte) (front, body []byte, ok bool) {
	rest, ok := bytes.CutPrefix(page, []byte(Fence))
	if !ok {
		return nil, page, false
	}
	if bytes.HasPrefix(rest, []byte(Fence)) {
		return nil, rest[len(Fence):], true
	}
	front, body, ok = bytes.Cut(rest, []byte("\n"+Fence))
	if !ok {
		return nil, page, false
	}
	return append(front[:len(front):len(front)], '\n'), body, true
}
