package ops

import (
	"fmt"
	"strings"

	"github.com/localstash/docstash/internal/errors"
	"github.com/localstash/docstash/internal/store"
)

// Fixed retrieval messages. These are deliberate fallback signals to the
// calling agent, not errors.
const (
	MsgNoDocuments = "No documents found in local store. " +
		"You may now answer from your own knowledge."
	MsgNoRelevantInfo = "No relevant information found in local documents. " +
		"You may now answer from your own knowledge."
)

// CheckInput contains parameters for the Check operation.
type CheckInput struct {
	Query string
}

// CheckOutput contains the result of the Check operation.
type CheckOutput struct {
	Result string `json:"result"`
}

// Check scans every supported document for lines matching the query and
// returns one labeled block per document, separated by blank lines, in
// enumeration order.
//
// A line matches when any query token of length >= 2 is a case-insensitive
// substring of it (OR semantics). A document with at least one matching
// line contributes only those lines; a document with none contributes its
// entire content, flagged for careful review — retrieval favors
// over-inclusion over silent omission. Documents that fail to read become
// inline error blocks and never abort the rest of the scan.
func Check(s *store.Store, input CheckInput) (*CheckOutput, error) {
	tokens := Tokenize(input.Query)

	docs, err := s.ListSupported()
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return &CheckOutput{Result: MsgNoDocuments}, nil
	}

	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		content, err := s.Read(doc.Name)
		if err != nil {
			blocks = append(blocks, errorBlock(doc.Name, err))
			continue
		}
		if content == "" {
			continue
		}

		matched := matchLines(content, tokens)
		if len(matched) > 0 {
			blocks = append(blocks, matchBlock(doc.Name, matched))
		} else {
			blocks = append(blocks, fallbackBlock(doc.Name, content))
		}
	}

	if len(blocks) == 0 {
		return &CheckOutput{Result: MsgNoRelevantInfo}, nil
	}

	return &CheckOutput{Result: strings.Join(blocks, "\n\n")}, nil
}

// matchLines collects lines containing any token, in original order.
// The test is line-matches-or-not: a line matching several tokens still
// appears once.
func matchLines(content string, tokens []string) []string {
	var matched []string
	for _, line := range splitLines(content) {
		lower := strings.ToLower(line)
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				matched = append(matched, line)
				break
			}
		}
	}
	return matched
}

func matchBlock(name string, lines []string) string {
	return fmt.Sprintf("── From %s ──\n%s", name, strings.Join(lines, "\n"))
}

func fallbackBlock(name, content string) string {
	return fmt.Sprintf("── Full content of %s (no direct keyword match, review this data carefully) ──\n%s", name, content)
}

func errorBlock(name string, err error) string {
	msg := err.Error()
	if sErr, ok := err.(*errors.StashError); ok {
		msg = sErr.Message
	}
	return fmt.Sprintf("── Error reading %s: %s ──", name, msg)
}
