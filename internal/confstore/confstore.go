// Package confstore is a small JSON-file configuration store with
// dotted-path access to nested keys. The taskctl CLI uses it to
// persist settings such as the API base URL.
package confstore

import (
	"fmt"
	"strings"

	"github.com/ozgurgul/taskdemo/internal/utils"
)

// Store reads and writes one JSON configuration file lazily.
type Store struct {
	file   string
	fm     *utils.FileManager
	config map[string]any
}

// New creates a store backed by file (a path relative to dir).
func New(dir, file string) *Store {
	return &Store{file: file, fm: utils.NewFileManager(dir)}
}

// Load reads the configuration from disk, falling back to defaults
// when the file does not exist.
func (s *Store) Load() (map[string]any, error) {
	cfg, err := s.fm.ReadJSON(s.file)
	if err != nil {
		if utils.IsNotExist(err) {
			s.config = Defaults()
			return s.config, nil
		}
		return nil, err
	}
	s.config = cfg
	return cfg, nil
}

// Save writes the given configuration to disk and keeps it as the
// current state.
func (s *Store) Save(cfg map[string]any) error {
	s.config = cfg
	return s.fm.WriteJSON(s.file, cfg)
}

// Get returns the value at a dotted path like "api.base_url", or def
// when any segment is missing.
func (s *Store) Get(key string, def any) any {
	if s.config == nil {
		if _, err := s.Load(); err != nil {
			return def
		}
	}

	var value any = s.config
	for _, k := range strings.Split(key, ".") {
		node, ok := value.(map[string]any)
		if !ok {
			return def
		}
		value, ok = node[k]
		if !ok {
			return def
		}
	}
	return value
}

// GetString is Get for string values; non-strings fall back to def.
func (s *Store) GetString(key, def string) string {
	if v, ok := s.Get(key, def).(string); ok {
		return v
	}
	return def
}

// Set assigns the value at a dotted path, creating intermediate
// objects as needed, and persists the result.
func (s *Store) Set(key string, value any) error {
	if s.config == nil {
		if _, err := s.Load(); err != nil {
			return err
		}
	}

	keys := strings.Split(key, ".")
	node := s.config
	for _, k := range keys[:len(keys)-1] {
		child, ok := node[k].(map[string]any)
		if !ok {
			if _, exists := node[k]; exists {
				return fmt.Errorf("confstore: %q is not a nested object", k)
			}
			child = map[string]any{}
			node[k] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value

	return s.Save(s.config)
}

// Defaults returns the configuration used when no file exists yet.
func Defaults() map[string]any {
	return map[string]any{
		"api": map[string]any{
			"base_url": "http://localhost:8080",
			"timeout":  30,
		},
		"features": map[string]any{
			"email_validation": true,
		},
	}
}
