package ops

import (
	"github.com/localstash/docstash/internal/document"
	"github.com/localstash/docstash/internal/errors"
	"github.com/localstash/docstash/internal/store"
)

// ReadInput contains parameters for the Read operation.
type ReadInput struct {
	Filename string
}

// ReadOutput contains the result of the Read operation.
type ReadOutput struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Read returns the full extracted text of a single document.
// A missing file is NOT_FOUND and an unrecognized extension is
// UNSUPPORTED_FORMAT; both are expected conditions. Decode failures
// propagate as-is: there is no batch here to protect.
func Read(s *store.Store, input ReadInput) (*ReadOutput, error) {
	content, err := s.Read(input.Filename)
	if err != nil {
		return nil, err
	}

	if document.FormatForPath(input.Filename) == document.FormatUnsupported {
		return nil, errors.NewUnsupportedFormat(input.Filename)
	}

	return &ReadOutput{Filename: input.Filename, Content: content}, nil
}
