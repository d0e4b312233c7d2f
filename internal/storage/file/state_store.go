// Package file implements storage.StateStore on a single JSON file.
// This is the default backend: one object with stock_references,
// job_references and last_hiring_refresh fields.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"market-pulse/internal/domain"
	"market-pulse/internal/storage"
)

// StateStore reads and writes the reference state file.
type StateStore struct {
	path string
}

// NewStateStore creates a file-backed state store at path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Load reads the state file. Returns storage.ErrNotFound when the file does
// not exist.
func (s *StateStore) Load(_ context.Context) (*domain.PersistedState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("read state file %s: %w", s.path, err)
	}

	var state domain.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	state.Normalize()

	return &state, nil
}

// Persist writes the full state in one operation. The write goes through a
// temporary file and a rename so a crash mid-write cannot leave a truncated
// state file behind.
func (s *StateStore) Persist(_ context.Context, state *domain.PersistedState) error {
	if state == nil {
		return storage.ErrInvalidInput
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

var _ storage.StateStore = (*StateStore)(nil)
