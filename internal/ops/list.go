package ops

import (
	"github.com/localstash/docstash/internal/store"
)

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Filenames []string `json:"filenames"`
}

// List returns the base filenames of every file directly under the store
// root, regardless of extension. What exists and what is searchable are
// different questions; this answers the first.
func List(s *store.Store) (*ListOutput, error) {
	docs, err := s.List()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}

	return &ListOutput{Filenames: names}, nil
}
