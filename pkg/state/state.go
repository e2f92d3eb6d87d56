// Package state persists the small user-preference overrides that survive
// restarts: the active preset and the active mode. The file is advisory; a
// missing or corrupt file is treated as empty and concurrent writers are
// last-writer-wins.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// State is the persisted override record. Zero values mean "no override".
type State struct {
	ActivePreset string `json:"activePreset,omitempty"`
	ActiveMode   string `json:"activeMode,omitempty"`
}

// Patch describes a partial state update. Nil fields are left untouched.
type Patch struct {
	ActivePreset *string
	ActiveMode   *string
}

// Store reads and writes the override file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the override file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the persisted state. An absent, unreadable or unparsable file
// yields the zero State; Read never fails.
func (s *Store) Read() State {
	var st State
	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(data, &st)
	return st
}

// Write merges patch into the persisted state and rewrites the file, creating
// the parent directory if needed. Callers that change routing state must
// invalidate their config cache afterwards; the store has no cache knowledge.
func (s *Store) Write(patch Patch) error {
	st := s.Read()
	if patch.ActivePreset != nil {
		st.ActivePreset = *patch.ActivePreset
	}
	if patch.ActiveMode != nil {
		st.ActiveMode = *patch.ActiveMode
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// SetActivePreset persists a new active preset.
func (s *Store) SetActivePreset(name string) error {
	return s.Write(Patch{ActivePreset: &name})
}

// SetActiveMode persists a new active mode.
func (s *Store) SetActiveMode(name string) error {
	return s.Write(Patch{ActiveMode: &name})
}
