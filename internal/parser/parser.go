package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExtension is returned for files that are not markdown.
var ErrUnsupportedExtension = errors.New("file must be a markdown file (.md)")

// SupportedExtensions lists file extensions this reader can open.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// fileURLPrefix is how dropped files arrive from a browser or file manager.
const fileURLPrefix = "file:///"

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// CheckExtension returns ErrUnsupportedExtension (wrapped with the
// offending extension) when filename is not a markdown file.
func CheckExtension(filename string) error {
	if !IsSupportedExtension(filename) {
		return fmt.Errorf("%s: %w", filename, ErrUnsupportedExtension)
	}
	return nil
}

// NormalizePath strips a leading file:/// scheme so dropped files and plain
// paths are handled the same way.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, fileURLPrefix) {
		rest := path[len(fileURLPrefix):]
		// Keep the root slash on Unix-style paths; Windows paths start with a drive letter.
		if len(rest) >= 2 && rest[1] == ':' {
			return rest
		}
		return "/" + rest
	}
	return path
}

// TitleFromPath returns the file name without its extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
