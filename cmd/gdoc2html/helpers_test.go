package main

// Notes:
// - This file contains test helpers and fixtures used across command tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gdoc2html "github.com/alnah/go-gdoc2html"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// fixedNow is the clock used for "auto" dates.
var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// docJSON is a small document resource with a title heading and a link to
// the document with ID "doc2".
const docJSON = `{
  "title": "Draft title",
  "body": {"content": [
    {"paragraph": {"elements": [{"textRun": {"content": "Intro\n"}}],
                   "paragraphStyle": {"namedStyleType": "HEADING_1"}}},
    {"paragraph": {"elements": [
      {"textRun": {"content": "See "}},
      {"textRun": {"content": "other", "textStyle": {"link": {"url": "https://docs.google.com/document/d/doc2/edit"}}}},
      {"textRun": {"content": "\n"}}
    ]}}
  ]}
}`

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers, with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// discardLogger returns a logger that drops all records.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile writes content below dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// recordingConverter records inputs and returns a fixed page or error.
type recordingConverter struct {
	mu     sync.Mutex
	inputs []gdoc2html.Input
	page   []byte
	err    error
}

func (c *recordingConverter) Convert(_ context.Context, input gdoc2html.Input) (*gdoc2html.Result, error) {
	c.mu.Lock()
	c.inputs = append(c.inputs, input)
	c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}
	return &gdoc2html.Result{Page: c.page}, nil
}
