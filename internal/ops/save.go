package ops

import (
	"os"
	"strings"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/errors"
)

// SaveInput contains parameters for the Save operation. Data is expected
// to be tab-separated key/value lines, but the writer never parses or
// validates that structure — formatting correctness is the caller's
// responsibility.
type SaveInput struct {
	Data string
}

// SaveOutput contains the result of the Save operation.
type SaveOutput struct {
	File string `json:"file"`
	Path string `json:"path"`
}

// Save appends one record block to the well-known save file.
//
// Merge policy: if the file already has non-whitespace content, the new
// block goes after exactly one blank line following the trimmed existing
// content; otherwise the new block becomes the entire file. The result
// always ends in exactly one newline. Records are never rewritten or
// deleted — the file is append-only.
//
// This is an unsynchronized read-modify-write: concurrent appends can
// interleave and lose a record. Accepted for a single-caller local tool.
func Save(cfg *config.Config, input SaveInput) (*SaveOutput, error) {
	record := strings.TrimSpace(input.Data)
	if record == "" {
		return nil, errors.NewInvalidRequest("no data provided; nothing was saved")
	}

	path := cfg.SavePath()

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, classifyIOError(path, err)
	}

	var content string
	if prior := strings.TrimSpace(string(existing)); prior != "" {
		content = prior + "\n\n" + record + "\n"
	} else {
		content = record + "\n"
	}

	if err := os.MkdirAll(cfg.DocsDir, 0755); err != nil {
		return nil, classifyIOError(cfg.DocsDir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, classifyIOError(path, err)
	}

	return &SaveOutput{File: cfg.SaveFileName, Path: path}, nil
}

// classifyIOError maps a filesystem error to the save failure taxonomy:
// permission failures are distinguished from other I/O failures.
func classifyIOError(path string, err error) *errors.StashError {
	if os.IsPermission(err) {
		return errors.NewPermissionDenied(path)
	}
	return errors.NewIOFailure(err)
}
