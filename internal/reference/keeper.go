// Package reference owns the persisted baseline state for one run.
// The state is loaded once, mutated only through capture/mark calls on the
// Keeper, and written back at most once, only when something changed.
package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/storage"
)

// Keeper holds the in-memory PersistedState for one run and tracks whether it
// diverged from what was loaded. No other component mutates the state.
type Keeper struct {
	backend storage.StateStore
	state   *domain.PersistedState
	dirty   bool
}

// NewKeeper creates a Keeper over the given backend with an empty state.
// Call Load before the first capture.
func NewKeeper(backend storage.StateStore) *Keeper {
	return &Keeper{
		backend: backend,
		state:   domain.NewPersistedState(),
	}
}

// Load reads the persisted state from the backend. A missing store is a
// normal first run. Any other read failure leaves the Keeper on an empty
// state and returns the error for logging; the run continues either way.
func (k *Keeper) Load(ctx context.Context) error {
	state, err := k.backend.Load(ctx)
	if err != nil {
		k.state = domain.NewPersistedState()
		k.dirty = false
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load reference state: %w", err)
	}

	state.Normalize()
	k.state = state
	k.dirty = false
	return nil
}

// GetOrCapturePriceBaseline returns the entity's stored price baseline,
// capturing the observed price as the baseline if none exists yet. The
// candidate must be the current run's observation: the first successful
// observation for an entity is by definition its reference value.
func (k *Keeper) GetOrCapturePriceBaseline(ticker string, observed decimal.Decimal) (decimal.Decimal, bool) {
	if existing, ok := k.state.PriceBaselines[ticker]; ok {
		return existing, false
	}
	k.state.PriceBaselines[ticker] = observed
	k.dirty = true
	return observed, true
}

// GetOrCaptureHiringBaseline is the hiring-count analogue of
// GetOrCapturePriceBaseline.
func (k *Keeper) GetOrCaptureHiringBaseline(ticker string, observed int) (int, bool) {
	if existing, ok := k.state.HiringBaselines[ticker]; ok {
		return existing, false
	}
	k.state.HiringBaselines[ticker] = observed
	k.dirty = true
	return observed, true
}

// LastHiringRefresh returns the YYYY-MM-DD date of the last hiring pass,
// or "" when it has never run.
func (k *Keeper) LastHiringRefresh() string {
	return k.state.LastHiringRefresh
}

// MarkHiringRefreshed records date as the last hiring refresh.
func (k *Keeper) MarkHiringRefreshed(date string) {
	if k.state.LastHiringRefresh == date {
		return
	}
	k.state.LastHiringRefresh = date
	k.dirty = true
}

// Dirty reports whether the in-memory state diverged from what was loaded.
func (k *Keeper) Dirty() bool {
	return k.dirty
}

// PersistIfDirty writes the state back exactly once if any capture or mark
// call changed it; a clean state is not written at all. A write failure does
// not roll back the in-memory state: this run's deltas stand, and the next
// run simply re-captures whatever failed to persist.
func (k *Keeper) PersistIfDirty(ctx context.Context) error {
	if !k.dirty {
		return nil
	}
	if err := k.backend.Persist(ctx, k.state); err != nil {
		return fmt.Errorf("persist reference state: %w", err)
	}
	k.dirty = false
	return nil
}
