// Package sources defines the boundary to the upstream data providers. The
// core treats any fetch error, including ErrUnavailable, as "no observation
// for this entity this run"; nothing past this boundary sees provider errors.
package sources

import (
	"context"
	"errors"
	"time"

	"market-pulse/internal/domain"
)

// ErrUnavailable indicates the provider had no data for the request, e.g. a
// non-trading day with no recent session. Equivalent to any other fetch
// failure from the caller's point of view.
var ErrUnavailable = errors.New("no observation available")

// PriceSource returns the latest available closing price and same-session
// percentage change for a ticker.
type PriceSource interface {
	Quote(ctx context.Context, ticker string) (domain.PriceObservation, error)
}

// HiringSource returns the current count of open positions for a company
// display name.
type HiringSource interface {
	OpenPositions(ctx context.Context, company string) (domain.HiringObservation, error)
}

// SleepPacer returns a pacing function that waits d between consecutive
// fetches, returning early when the context is cancelled. Tests substitute a
// nil pacer without altering control flow.
func SleepPacer(d time.Duration) func(context.Context) {
	return func(ctx context.Context) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
}
