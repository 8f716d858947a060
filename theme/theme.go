// Package theme persists the light/dark display preference across sessions.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mode is the display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

type settings struct {
	Mode Mode `yaml:"mode"`
}

// Store reads and writes the theme preference as a YAML file. A missing or
// unreadable file means Light; persistence failures are non-fatal to match
// environments without a writable config dir.
type Store struct {
	path string
}

// NewStore creates a store at the default user config location.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("no user config dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "docsmith", "theme.yaml")}, nil
}

// NewStoreAt creates a store with an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved mode, defaulting to Light.
func (s *Store) Load() Mode {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Light
	}
	var cfg settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Light
	}
	if cfg.Mode == Dark {
		return Dark
	}
	return Light
}

// Save persists the mode.
func (s *Store) Save(mode Mode) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(settings{Mode: mode})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Toggle flips and persists the mode, returning the new value.
func (s *Store) Toggle() (Mode, error) {
	next := Light
	if s.Load() == Light {
		next = Dark
	}
	if err := s.Save(next); err != nil {
		return next, err
	}
	return next, nil
}
