package document

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/localstash/docstash/internal/errors"
)

// writeTestDocx creates a minimal valid DOCX file on disk.
func writeTestDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	types, err := w.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("create content types: %v", err)
	}
	types.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	if documentXML != "" {
		doc, err := w.Create("word/document.xml")
		if err != nil {
			t.Fatalf("create document.xml: %v", err)
		}
		doc.Write([]byte(documentXML))
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"notes.txt", FormatPlainText},
		{"report.pdf", FormatPDF},
		{"letter.docx", FormatWordDoc},
		{"REPORT.PDF", FormatPDF},
		{"archive.zip", FormatUnsupported},
		{"README", FormatUnsupported},
		{"legacy.doc", FormatUnsupported},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExtractText(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid utf8", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a.txt")
		content := "Alice\nBob lives in Paris"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := ExtractText(path)
		if err != nil {
			t.Fatalf("ExtractText failed: %v", err)
		}
		if got != content {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.txt")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x41}, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		_, err := ExtractText(path)
		if !errors.Is(err, errors.ErrDecodeFailed) {
			t.Errorf("err = %v, want DECODE_FAILED", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ExtractText(filepath.Join(tmpDir, "absent.txt")); err == nil {
			t.Error("ExtractText should fail on a missing file")
		}
	})
}

func TestExtractDocx(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("paragraphs joined by newline", func(t *testing.T) {
		path := filepath.Join(tmpDir, "doc.docx")
		writeTestDocx(t, path, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

		got, err := ExtractDocx(path)
		if err != nil {
			t.Fatalf("ExtractDocx failed: %v", err)
		}
		want := "First paragraph.\nSecond paragraph."
		if got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("no document part", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.docx")
		writeTestDocx(t, path, "")

		got, err := ExtractDocx(path)
		if err != nil {
			t.Fatalf("ExtractDocx failed: %v", err)
		}
		if got != "" {
			t.Errorf("content = %q, want empty", got)
		}
	})

	t.Run("not a zip archive", func(t *testing.T) {
		path := filepath.Join(tmpDir, "fake.docx")
		if err := os.WriteFile(path, []byte("plain text pretending"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		_, err := ExtractDocx(path)
		if !errors.Is(err, errors.ErrDecodeFailed) {
			t.Errorf("err = %v, want DECODE_FAILED", err)
		}
	})

	t.Run("malformed document xml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.docx")
		writeTestDocx(t, path, "<w:document><unclosed")

		_, err := ExtractDocx(path)
		if !errors.Is(err, errors.ErrDecodeFailed) {
			t.Errorf("err = %v, want DECODE_FAILED", err)
		}
	})
}

func TestExtractPDF_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "corrupt.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 garbage"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := ExtractPDF(path)
	if !errors.Is(err, errors.ErrDecodeFailed) {
		t.Errorf("err = %v, want DECODE_FAILED", err)
	}
}

func TestExtract_Dispatch(t *testing.T) {
	tmpDir := t.TempDir()

	txtPath := filepath.Join(tmpDir, "a.txt")
	if err := os.WriteFile(txtPath, []byte("hello"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Run("plain text", func(t *testing.T) {
		got, err := Extract(txtPath)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("unsupported extension yields empty, no error", func(t *testing.T) {
		binPath := filepath.Join(tmpDir, "blob.bin")
		if err := os.WriteFile(binPath, []byte{1, 2, 3}, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := Extract(binPath)
		if err != nil {
			t.Errorf("Extract returned error for unsupported format: %v", err)
		}
		if got != "" {
			t.Errorf("content = %q, want empty", got)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first, err := Extract(txtPath)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		second, err := Extract(txtPath)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if first != second {
			t.Error("repeated extraction of an unchanged file differed")
		}
	})
}

func TestExtractText_LargeContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "big.txt")
	content := strings.Repeat("line of text\n", 1000)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if got != content {
		t.Error("large file content mismatch")
	}
}
