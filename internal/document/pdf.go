package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/localstash/docstash/internal/errors"
)

// ExtractPDF concatenates per-page extracted text in page order.
// Pages with no extractable text layer (scanned images, drawings)
// contribute an empty string rather than an error; the caller never
// learns the difference between an empty page and a missing text layer.
func ExtractPDF(path string) (text string, err error) {
	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.NewDecodeFailed(filepath.Base(path), fmt.Errorf("%v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", errors.NewDecodeFailed(filepath.Base(path), err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
	}

	return b.String(), nil
}
