// Package session keeps per-user screen state between CLI invocations:
// the list selections and the receipt of the most recent deletion.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// State is the content of the session file
type State struct {
	Filter       models.FilterSelection `yaml:"filter"`
	Sort         models.SortSelection   `yaml:"sort"`
	LastDeletion *task.DeletionReceipt  `yaml:"last_deletion,omitempty"`
}

// Store reads and writes State at a fixed path
type Store struct {
	path string
}

// DefaultPath returns ~/.taskmanager/session.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskmanager", "session.yaml"), nil
}

// NewStore creates a store for the session file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the session file. A missing file yields fallback.
func (s *Store) Load(fallback State) (State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("failed to read session: %w", err)
	}

	state := fallback
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fallback, fmt.Errorf("failed to parse session %s: %w", s.path, err)
	}
	return state, nil
}

// Save writes state, creating the directory if needed
func (s *Store) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Update loads the current state, applies fn and saves the result
func (s *Store) Update(fallback State, fn func(*State)) (State, error) {
	state, err := s.Load(fallback)
	if err != nil {
		return state, err
	}
	fn(&state)
	return state, s.Save(state)
}
