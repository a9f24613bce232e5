package fileutil_test

// Notes:
// - The Write and Close error branches in WriteFile are not tested because
//   triggering disk write failures is platform-specific.
// - Permission bits are only checked on Unix where umask does not apply to
//   os.Chmod.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-gdoc2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension html",
			extension: "html",
			wantErr:   nil,
		},
		{
			name:      "valid extension json",
			extension: "json",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "forward slash path traversal",
			extension: "../etc/passwd",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "backslash path traversal",
			extension: "..\\windows\\system32",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "null byte injection",
			extension: "html\x00exe",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExtension - Output path naming
// ---------------------------------------------------------------------------

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		extension string
		want      string
		wantErr   error
	}{
		{
			name:      "json document",
			path:      "docs/1AbC.json",
			extension: "html",
			want:      "docs/1AbC.html",
		},
		{
			name:      "markdown document",
			path:      "/content/notes.md",
			extension: "html",
			want:      "/content/notes.html",
		},
		{
			name:      "no extension",
			path:      "docs/readme",
			extension: "html",
			want:      "docs/readme.html",
		},
		{
			name:      "only last extension replaced",
			path:      "docs/v1.2.json",
			extension: "html",
			want:      "docs/v1.2.html",
		},
		{
			name:      "empty extension",
			path:      "docs/a.json",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "traversal extension",
			path:      "docs/a.json",
			extension: "../x",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReplaceExtension(tt.path, tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReplaceExtension() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.extension, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Atomic page writes
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing *string
		content  string
		want     bool
	}{
		{
			name:    "new file is written",
			content: "<p>new</p>",
			want:    true,
		},
		{
			name:     "changed file is rewritten",
			existing: ptr("<p>old</p>"),
			content:  "<p>new</p>",
			want:     true,
		},
		{
			name:     "same size different content is rewritten",
			existing: ptr("<p>abc</p>"),
			content:  "<p>xyz</p>",
			want:     true,
		},
		{
			name:     "unchanged file is left alone",
			existing: ptr("<p>same</p>"),
			content:  "<p>same</p>",
			want:     false,
		},
		{
			name:    "empty content",
			content: "",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "page.html")
			if tt.existing != nil {
				if err := os.WriteFile(path, []byte(*tt.existing), 0o600); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			written, err := fileutil.WriteFile(path, []byte(tt.content), 0o644)
			if err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if written != tt.want {
				t.Errorf("WriteFile() written = %v, want %v", written, tt.want)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(data) != tt.content {
				t.Errorf("file content = %q, want %q", data, tt.content)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("ReadDir() error = %v", err)
			}
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), ".tmp") {
					t.Errorf("temp file %q left behind", e.Name())
				}
			}
		})
	}
}

func TestWriteFile_Permissions(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	path := filepath.Join(t.TempDir(), "page.html")
	if _, err := fileutil.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("mode = %v, want %v", got, os.FileMode(0o644))
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "page.html")

	written, err := fileutil.WriteFile(path, []byte("x"), 0o644)
	if err == nil {
		t.Fatal("WriteFile() expected error for missing directory, got nil")
	}
	if written {
		t.Error("WriteFile() written = true on error")
	}
	if !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("WriteFile() error = %q, want error containing 'creating temp file'", err.Error())
	}
}

// ---------------------------------------------------------------------------
// TestSameContent - Content comparison
// ---------------------------------------------------------------------------

func TestSameContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	if err := os.WriteFile(path, []byte("content"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		data string
		want bool
	}{
		{"identical content", path, "content", true},
		{"different content", path, "CONTENT", false},
		{"different length", path, "content!", false},
		{"missing file", filepath.Join(dir, "absent.html"), "content", false},
		{"directory", dir, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.SameContent(tt.path, []byte(tt.data)); got != tt.want {
				t.Errorf("SameContent(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", testFile, true},
		{"directory returns false", testDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name returns false", "site", false},
		{"relative path with dot-slash returns true", "./site.yaml", true},
		{"parent path returns true", "../shared/site.yaml", true},
		{"absolute Unix path returns true", "/etc/gdoc2html/site.yaml", true},
		{"Windows path with backslash returns true", "C:\\sites\\blog.yaml", true},
		{"hyphenated name returns false", "my-site", false},
		{"empty string returns false", "", false},
		{"name with dots but no slash returns false", "name.with.dots", false},
		{"Windows drive letter path returns true", "D:/sites/blog.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsURL - URL detection
// ---------------------------------------------------------------------------

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"http URL returns true", "http://example.com", true},
		{"https URL returns true", "https://example.com/images", true},
		{"absolute path returns false", "/images", false},
		{"relative path returns false", "./images", false},
		{"empty string returns false", "", false},
		{"ftp URL returns false", "ftp://example.com", false},
		{"HTTP uppercase returns false", "HTTP://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsURL(tt.input)
			if got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
