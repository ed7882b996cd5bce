package document

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/localstash/docstash/internal/errors"
)

// ExtractText reads a plain text file and returns its content verbatim.
// Bytes that are not valid UTF-8 are a decode failure, never a silent
// truncation.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.NewDecodeFailed(filepath.Base(path), nil)
	}
	return string(data), nil
}
