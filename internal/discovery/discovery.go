// Package discovery finds content documents under a root directory using
// doublestar glob patterns, with exclude patterns and the usual filesystem
// edge cases (symlinks, binaries, empty files) handled up front.
package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns matched against the root when no
// explicit patterns are configured.
var DefaultPatterns = []string{
	"**/*.md",
	"**/*.markdown",
}

// DefaultExcludes are always-skipped directories.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/vendor/**",
	"**/_*/**",
}

// File represents a discovered content document.
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Contents string
}

// Discovery manages content file discovery under a single root.
type Discovery struct {
	rootPath string
	patterns []string
	excludes []string
}

// New creates a Discovery over rootPath. Extra exclude patterns are added to
// the defaults; nil means defaults only.
func New(rootPath string, excludes []string) *Discovery {
	return &Discovery{
		rootPath: rootPath,
		patterns: DefaultPatterns,
		excludes: append(append([]string{}, DefaultExcludes...), excludes...),
	}
}

// Discover finds all content files under the root, in deterministic order.
// Glob results from doublestar are lexically sorted per pattern, so repeated
// runs over an unchanged tree produce the same list.
func (d *Discovery) Discover() ([]File, error) {
	seen := make(map[string]bool)
	var files []File

	for _, pattern := range d.patterns {
		matches, err := doublestar.Glob(os.DirFS(d.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] || d.excluded(match) {
				continue
			}
			seen[match] = true
			f, ok := d.processMatch(match)
			if ok {
				files = append(files, f)
			}
		}
	}

	return files, nil
}

// excluded reports whether a relative path matches any exclude pattern.
func (d *Discovery) excluded(relPath string) bool {
	for _, pattern := range d.excludes {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the
// match should be skipped.
func (d *Discovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(d.rootPath, match)

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return File{}, false
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return File{}, false
	}
	if bytes.Contains(contents, []byte{0}) {
		return File{}, false
	}

	return File{
		Path:     fullPath,
		RelPath:  match,
		Size:     info.Size(),
		Contents: string(contents),
	}, true
}

// ValidateFilePath checks all preconditions for evaluating a single file:
// it exists, is a readable non-empty text file, and is not a directory.
// Symlinks are resolved. Returns the absolute resolved path.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		realPath, evalErr := filepath.EvalSymlinks(absPath)
		if evalErr != nil {
			return "", fmt.Errorf("cannot resolve symlink %s: %w", absPath, evalErr)
		}
		absPath = realPath
		info, err = os.Stat(absPath)
		if err != nil {
			return "", fmt.Errorf("symlink target inaccessible: %s: %w", absPath, err)
		}
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".md" && ext != ".markdown" && ext != ".txt" {
		return "", fmt.Errorf("unsupported file type: %s. contentgate evaluates .md, .markdown, and .txt files", ext)
	}

	return absPath, nil
}
