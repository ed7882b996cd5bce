package store

import (
	"fmt"
	"strings"
)

// UnreadablePreview is the sentinel recorded for documents whose content
// could not be extracted during the summary build.
const UnreadablePreview = "(could not read)"

// NoDocumentsSummary is the fixed aggregate message for an empty store.
const NoDocumentsSummary = "No documents currently stored."

// SummaryEntry is a bounded preview of one document.
type SummaryEntry struct {
	Name       string
	Preview    string
	Unreadable bool
}

// Summarize scans the supported documents and returns a preview entry for
// each. It is intended to run exactly once at process start: the result
// is a snapshot and goes stale when documents change afterward, which is
// accepted rather than silently refreshed.
//
// A document that fails extraction gets the unreadable sentinel instead of
// aborting the build; a document whose extraction is empty is omitted.
func Summarize(s *Store, previewChars int) []SummaryEntry {
	docs, err := s.ListSupported()
	if err != nil {
		return nil
	}

	entries := make([]SummaryEntry, 0, len(docs))
	for _, doc := range docs {
		content, err := s.Read(doc.Name)
		if err != nil {
			entries = append(entries, SummaryEntry{Name: doc.Name, Preview: UnreadablePreview, Unreadable: true})
			continue
		}
		if content == "" {
			continue
		}
		entries = append(entries, SummaryEntry{Name: doc.Name, Preview: preview(content, previewChars)})
	}
	return entries
}

// FormatSummary renders summary entries as the human-readable block
// embedded into tool descriptions.
func FormatSummary(entries []SummaryEntry) string {
	if len(entries) == 0 {
		return NoDocumentsSummary
	}

	var b strings.Builder
	b.WriteString("Documents currently stored:")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("\n  - %s: %s", e.Name, e.Preview))
	}
	return b.String()
}

// BuildSummary runs the one-time startup summary: Summarize + FormatSummary.
func BuildSummary(s *Store, previewChars int) string {
	return FormatSummary(Summarize(s, previewChars))
}

// preview returns the first max runes of the trimmed content.
func preview(content string, max int) string {
	trimmed := strings.TrimSpace(content)
	runes := []rune(trimmed)
	if len(runes) <= max {
		return trimmed
	}
	return string(runes[:max])
}
