package storage

import (
	"context"

	"market-pulse/internal/domain"
)

// StateStore provides durable access to the persisted reference state.
// Implementations must treat the state as one atomic record: Load returns the
// whole aggregate and Persist replaces it in a single operation.
type StateStore interface {
	// Load reads the full persisted state. Returns ErrNotFound when no state
	// has ever been persisted (first run).
	Load(ctx context.Context) (*domain.PersistedState, error)

	// Persist durably writes the full state. Called at most once per run, and
	// only when the in-memory state changed.
	Persist(ctx context.Context, state *domain.PersistedState) error
}
