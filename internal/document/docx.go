package document

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"

	"github.com/localstash/docstash/internal/errors"
)

// documentXML mirrors the paragraph structure of word/document.xml.
// Tables, headers, and footers are not extracted.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// ExtractDocx concatenates paragraph texts of a .docx file in document
// order, separated by newlines. A file that is not a valid ZIP archive or
// whose document part cannot be parsed is a decode failure; an archive
// with no document part yields an empty string.
func ExtractDocx(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", errors.NewDecodeFailed(filepath.Base(path), err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", errors.NewDecodeFailed(filepath.Base(path), err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", errors.NewDecodeFailed(filepath.Base(path), err)
		}

		var doc documentXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", errors.NewDecodeFailed(filepath.Base(path), err)
		}

		var b strings.Builder
		for i, para := range doc.Body.Paragraphs {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, r := range para.Runs {
				for _, t := range r.Text {
					b.WriteString(t.Content)
				}
			}
		}
		return b.String(), nil
	}

	return "", nil
}
