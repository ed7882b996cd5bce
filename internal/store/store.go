// Package store enumerates and reads the documents under the store root.
// The root is re-enumerated on every call; nothing is cached, so files
// added or removed between calls are observed immediately by the next one.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/localstash/docstash/internal/document"
	"github.com/localstash/docstash/internal/errors"
)

// Document represents one file directly under the store root.
type Document struct {
	Name   string // base filename, unique within the root
	Path   string
	Format document.Format
}

// Store owns enumeration of a single root directory. Enumeration is
// single-level only: subdirectories (photos, and anything else) are never
// traversed.
type Store struct {
	root string
}

// New creates a Store over the given root directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// List enumerates every regular file directly under the root, regardless
// of extension. An empty or missing root yields an empty slice.
func (s *Store) List() ([]Document, error) {
	return s.list(false)
}

// ListSupported enumerates only the files whose extension is in the
// supported set. This is the searchable subset; List answers the broader
// "what files exist" question.
func (s *Store) ListSupported() ([]Document, error) {
	return s.list(true)
}

func (s *Store) list(supportedOnly bool) ([]Document, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Document{}, nil
		}
		return nil, errors.NewIOFailure(err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		format := document.FormatForPath(name)
		if supportedOnly && format == document.FormatUnsupported {
			continue
		}
		docs = append(docs, Document{
			Name:   name,
			Path:   filepath.Join(s.root, name),
			Format: format,
		})
	}
	return docs, nil
}

// Read resolves a document by exact base filename and returns its
// extracted text. A name that does not correspond to an existing file is
// NOT_FOUND; an unsupported extension yields empty text with no error.
func (s *Store) Read(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, name)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFound(name)
		}
		return "", errors.NewIOFailure(err)
	}
	if info.IsDir() {
		return "", errors.NewNotFound(name)
	}

	return document.Extract(path)
}

// validateName rejects names that could escape the store root.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidRequest("filename is required")
	}
	if strings.ContainsAny(name, `/\`) || name == ".." {
		return errors.NewInvalidRequest("filename must not contain path separators")
	}
	return nil
}
