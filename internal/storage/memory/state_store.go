// Package memory implements storage.StateStore in memory, for tests and the
// offline preview command.
package memory

import (
	"context"
	"sync"

	"market-pulse/internal/domain"
	"market-pulse/internal/storage"
)

// StateStore is an in-memory implementation of storage.StateStore.
type StateStore struct {
	mu           sync.Mutex
	state        *domain.PersistedState
	loadErr      error
	persistErr   error
	persistCalls int
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// Seed replaces the stored state, bypassing Persist accounting.
func (s *StateStore) Seed(state *domain.PersistedState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = copyState(state)
}

// FailLoadWith makes subsequent Load calls return err.
func (s *StateStore) FailLoadWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailPersistWith makes subsequent Persist calls return err.
func (s *StateStore) FailPersistWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistErr = err
}

// PersistCalls reports how many times Persist was invoked.
func (s *StateStore) PersistCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistCalls
}

// Load returns a copy of the stored state, or storage.ErrNotFound when
// nothing has been persisted or seeded.
func (s *StateStore) Load(_ context.Context) (*domain.PersistedState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.state == nil {
		return nil, storage.ErrNotFound
	}
	return copyState(s.state), nil
}

// Persist stores a copy of the full state.
func (s *StateStore) Persist(_ context.Context, state *domain.PersistedState) error {
	if state == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistCalls++
	if s.persistErr != nil {
		return s.persistErr
	}
	s.state = copyState(state)
	return nil
}

func copyState(state *domain.PersistedState) *domain.PersistedState {
	if state == nil {
		return nil
	}
	out := domain.NewPersistedState()
	out.LastHiringRefresh = state.LastHiringRefresh
	for k, v := range state.PriceBaselines {
		out.PriceBaselines[k] = v
	}
	for k, v := range state.HiringBaselines {
		out.HiringBaselines[k] = v
	}
	return out
}

var _ storage.StateStore = (*StateStore)(nil)
