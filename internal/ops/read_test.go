package ops

import (
	"testing"

	"github.com/localstash/docstash/internal/errors"
)

func TestRead(t *testing.T) {
	s, cfg := testSetup(t)
	writeDoc(t, cfg, "fact.txt", "the capital of France is Paris")

	output, err := Read(s, ReadInput{Filename: "fact.txt"})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if output.Content != "the capital of France is Paris" {
		t.Errorf("Content = %q", output.Content)
	}
	if output.Filename != "fact.txt" {
		t.Errorf("Filename = %q", output.Filename)
	}
}

func TestRead_Deterministic(t *testing.T) {
	s, cfg := testSetup(t)
	writeDoc(t, cfg, "fact.txt", "stable content")

	first, err := Read(s, ReadInput{Filename: "fact.txt"})
	if err != nil {
		t.Fatalf("first Read failed: %v", err)
	}
	second, err := Read(s, ReadInput{Filename: "fact.txt"})
	if err != nil {
		t.Fatalf("second Read failed: %v", err)
	}
	if first.Content != second.Content {
		t.Errorf("repeated reads differ: %q vs %q", first.Content, second.Content)
	}
}

func TestRead_NotFound(t *testing.T) {
	s, _ := testSetup(t)

	_, err := Read(s, ReadInput{Filename: "missing.txt"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestRead_UnsupportedFormat(t *testing.T) {
	s, cfg := testSetup(t)
	writeDoc(t, cfg, "notes.bin", "opaque")

	_, err := Read(s, ReadInput{Filename: "notes.bin"})
	if !errors.Is(err, errors.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want UNSUPPORTED_FORMAT", err)
	}
}

func TestRead_MissingBeatsUnsupported(t *testing.T) {
	s, _ := testSetup(t)

	// A file that is both missing and unsupported reports NOT_FOUND.
	_, err := Read(s, ReadInput{Filename: "missing.bin"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
