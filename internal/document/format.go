// Package document provides per-format text extraction for the files in
// the store root. Extraction is pure: given the same on-disk bytes, the
// same text comes back, and nothing is ever written.
package document

import (
	"path/filepath"
	"strings"
)

// Format identifies one of the supported document formats.
type Format int

const (
	FormatUnsupported Format = iota
	FormatPlainText
	FormatPDF
	FormatWordDoc
)

// formatByExt is the closed supported set. Anything else is unsupported.
var formatByExt = map[string]Format{
	".txt":  FormatPlainText,
	".pdf":  FormatPDF,
	".docx": FormatWordDoc,
}

// FormatForPath returns the format for a file path based on its extension
// (case-insensitive).
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatByExt[ext]; ok {
		return f
	}
	return FormatUnsupported
}

// Supported reports whether the path's extension is in the supported set.
func Supported(path string) bool {
	return FormatForPath(path) != FormatUnsupported
}

// Extract reads the file at path and returns its extracted text.
// Unsupported formats yield an empty string with no error: callers must
// treat "" as nothing-to-show, not as a failure.
func Extract(path string) (string, error) {
	switch FormatForPath(path) {
	case FormatPlainText:
		return ExtractText(path)
	case FormatPDF:
		return ExtractPDF(path)
	case FormatWordDoc:
		return ExtractDocx(path)
	default:
		return "", nil
	}
}
