package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Default layout and limits.
const (
	DefaultSaveFileName  = "agent_notes.txt"
	DefaultPhotosDirName = "photos"
	DefaultPreviewChars  = 500
	DefaultSearchLines   = 10
)

// Config holds application configuration.
type Config struct {
	// DocsDir is the store root: the directory all readable documents live
	// under. Defaults to <baseDir>/documents.
	DocsDir string `json:"docs_dir,omitempty"`

	// SaveFileName is the base name of the append-only save target inside
	// DocsDir. The record writer owns this file exclusively.
	SaveFileName string `json:"save_file_name,omitempty"`

	// PhotosDirName is the subdirectory of DocsDir where captured camera
	// images are persisted. Never traversed by document enumeration.
	PhotosDirName string `json:"photos_dir_name,omitempty"`

	// PreviewChars is the maximum preview length per document in the
	// startup summary.
	PreviewChars int `json:"preview_chars,omitempty"`

	// SearchMaxLines caps the matching lines returned by the per-document
	// search operation.
	SearchMaxLines int `json:"search_max_lines,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are reported at startup.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration. DocsDir is left empty;
// Load fills it from the base directory.
func DefaultConfig() *Config {
	return &Config{
		SaveFileName:   DefaultSaveFileName,
		PhotosDirName:  DefaultPhotosDirName,
		PreviewChars:   DefaultPreviewChars,
		SearchMaxLines: DefaultSearchLines,
	}
}

// Load loads configuration from baseDir/config.json, merged over defaults.
// Returns the default config if the file doesn't exist. Environment
// variables override file values (see ApplyEnv). The baseDir parameter
// allows tests to use t.TempDir() instead of ~/.docstash.
func Load(baseDir string) (*Config, error) {
	overlay, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}

	cfg := Merge(DefaultConfig(), overlay)
	ApplyEnv(cfg)

	if cfg.DocsDir == "" {
		cfg.DocsDir = filepath.Join(baseDir, "documents")
	}
	return cfg, nil
}

// ApplyEnv overrides config values from the environment.
// DOCSTASH_DOCS_DIR relocates the store root; DOCSTASH_SAVE_FILE renames
// the append target.
func ApplyEnv(cfg *Config) {
	if dir := strings.TrimSpace(os.Getenv("DOCSTASH_DOCS_DIR")); dir != "" {
		cfg.DocsDir = dir
	}
	if name := strings.TrimSpace(os.Getenv("DOCSTASH_SAVE_FILE")); name != "" {
		cfg.SaveFileName = name
	}
}

// SavePath returns the absolute path of the append-only save file.
func (c *Config) SavePath() string {
	return filepath.Join(c.DocsDir, c.SaveFileName)
}

// PhotosPath returns the absolute path of the captured-photos directory.
func (c *Config) PhotosPath() string {
	return filepath.Join(c.DocsDir, c.PhotosDirName)
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.DocsDir = overlay.DocsDir
	if result.DocsDir == "" {
		result.DocsDir = base.DocsDir
	}

	result.SaveFileName = overlay.SaveFileName
	if result.SaveFileName == "" {
		result.SaveFileName = base.SaveFileName
	}

	result.PhotosDirName = overlay.PhotosDirName
	if result.PhotosDirName == "" {
		result.PhotosDirName = base.PhotosDirName
	}

	result.PreviewChars = overlay.PreviewChars
	if result.PreviewChars == 0 {
		result.PreviewChars = base.PreviewChars
	}

	result.SearchMaxLines = overlay.SearchMaxLines
	if result.SearchMaxLines == 0 {
		result.SearchMaxLines = base.SearchMaxLines
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
