package ops

import (
	"strings"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/errors"
	"github.com/localstash/docstash/internal/store"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Filename string
	Query    string
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Filename  string   `json:"filename"`
	Lines     []string `json:"lines"`
	Truncated bool     `json:"truncated"`
}

// Search returns the lines of one document that contain the query as a
// case-insensitive substring, in original order, silently truncated past
// the configured cap.
func Search(s *store.Store, cfg *config.Config, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	read, err := Read(s, ReadInput{Filename: input.Filename})
	if err != nil {
		return nil, err
	}

	maxLines := cfg.SearchMaxLines
	if maxLines <= 0 {
		maxLines = config.DefaultSearchLines
	}

	needle := strings.ToLower(query)
	matches := make([]string, 0, maxLines)
	truncated := false
	for _, line := range splitLines(read.Content) {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		if len(matches) == maxLines {
			truncated = true
			break
		}
		matches = append(matches, line)
	}

	return &SearchOutput{
		Filename:  input.Filename,
		Lines:     matches,
		Truncated: truncated,
	}, nil
}
