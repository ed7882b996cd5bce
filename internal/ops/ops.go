// Package ops implements the document operations behind the MCP tools and
// CLI commands. Each operation takes an Input struct and returns an Output
// struct or a structured error; expected conditions (not found,
// unsupported format) are error codes the facade turns into plain-text
// results the calling agent can branch on.
package ops

import "strings"

// MinTokenRunes is the minimum query-token length considered for
// matching. Single-character tokens produce too many false positives and
// are dropped.
const MinTokenRunes = 2

// Tokenize lower-cases a query, splits it on whitespace, and discards
// tokens shorter than MinTokenRunes.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= MinTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// splitLines splits extracted content into lines, tolerating CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
