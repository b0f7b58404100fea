package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileManager performs JSON file operations rooted at a base directory.
type FileManager struct {
	base string
}

// NewFileManager creates a FileManager rooted at base.
func NewFileManager(base string) *FileManager {
	return &FileManager{base: base}
}

// IsNotExist reports whether err means the requested file was missing.
func IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

// ReadJSON reads and decodes a JSON object file.
func (f *FileManager) ReadJSON(name string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(f.base, name))
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", name, err)
	}
	return out, nil
}

// WriteJSON encodes data and writes it, creating parent directories as
// needed.
func (f *FileManager) WriteJSON(name string, data map[string]any) error {
	path := filepath.Join(f.base, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize %s: %w", name, err)
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}

// ListFiles returns the names of regular files in the base directory,
// sorted, optionally filtered by extension (e.g. ".json").
func (f *FileManager) ListFiles(ext string) ([]string, error) {
	entries, err := os.ReadDir(f.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
