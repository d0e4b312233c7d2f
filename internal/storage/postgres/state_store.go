// Package postgres implements storage.StateStore on PostgreSQL, for
// deployments where the scheduled run and the state do not share a disk.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/storage"
)

// StateStore is a PostgreSQL implementation of storage.StateStore.
// Uses three tables:
//   - price_baselines: ticker -> first-observed price
//   - hiring_baselines: ticker -> first-observed open-position count
//   - hiring_refresh_state: single row with the last hiring refresh date
type StateStore struct {
	pool *Pool
}

// NewStateStore creates a new PostgreSQL state store.
func NewStateStore(pool *Pool) *StateStore {
	return &StateStore{pool: pool}
}

// Load reads the full persisted state. An empty database yields an empty
// state, not ErrNotFound: with table-backed storage "never persisted" and
// "persisted nothing yet" are indistinguishable and equivalent.
func (s *StateStore) Load(ctx context.Context) (*domain.PersistedState, error) {
	state := domain.NewPersistedState()

	rows, err := s.pool.Query(ctx, `
		SELECT ticker, price::text
		FROM price_baselines
	`)
	if err != nil {
		return nil, fmt.Errorf("load price baselines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticker, priceText string
		if err := rows.Scan(&ticker, &priceText); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("decode price baseline %s: %w", ticker, err)
		}
		state.PriceBaselines[ticker] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	hiringRows, err := s.pool.Query(ctx, `
		SELECT ticker, open_positions
		FROM hiring_baselines
	`)
	if err != nil {
		return nil, fmt.Errorf("load hiring baselines: %w", err)
	}
	defer hiringRows.Close()

	for hiringRows.Next() {
		var ticker string
		var count int
		if err := hiringRows.Scan(&ticker, &count); err != nil {
			return nil, err
		}
		state.HiringBaselines[ticker] = count
	}
	if err := hiringRows.Err(); err != nil {
		return nil, err
	}

	var lastRefresh string
	err = s.pool.QueryRow(ctx, `
		SELECT to_char(last_refresh, 'YYYY-MM-DD')
		FROM hiring_refresh_state
		LIMIT 1
	`).Scan(&lastRefresh)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("load refresh state: %w", err)
	}
	state.LastHiringRefresh = lastRefresh

	return state, nil
}

// Persist writes the full state in one transaction. Baselines use
// ON CONFLICT DO NOTHING: once a row exists its value is frozen, so the
// once-captured-never-overwritten invariant holds even if two runs race.
func (s *StateStore) Persist(ctx context.Context, state *domain.PersistedState) error {
	if state == nil {
		return storage.ErrInvalidInput
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin persist: %w", err)
	}
	defer tx.Rollback(ctx)

	for ticker, price := range state.PriceBaselines {
		_, err := tx.Exec(ctx, `
			INSERT INTO price_baselines (ticker, price)
			VALUES ($1, $2::numeric)
			ON CONFLICT (ticker) DO NOTHING
		`, ticker, price.String())
		if err != nil {
			return fmt.Errorf("persist price baseline %s: %w", ticker, err)
		}
	}

	for ticker, count := range state.HiringBaselines {
		_, err := tx.Exec(ctx, `
			INSERT INTO hiring_baselines (ticker, open_positions)
			VALUES ($1, $2)
			ON CONFLICT (ticker) DO NOTHING
		`, ticker, count)
		if err != nil {
			return fmt.Errorf("persist hiring baseline %s: %w", ticker, err)
		}
	}

	if state.LastHiringRefresh != "" {
		_, err := tx.Exec(ctx, `
			INSERT INTO hiring_refresh_state (id, last_refresh, updated_at)
			VALUES (1, $1::date, NOW())
			ON CONFLICT (id) DO UPDATE
			SET last_refresh = EXCLUDED.last_refresh,
			    updated_at = NOW()
		`, state.LastHiringRefresh)
		if err != nil {
			return fmt.Errorf("persist refresh state: %w", err)
		}
	}

	return tx.Commit(ctx)
}

var _ storage.StateStore = (*StateStore)(nil)
