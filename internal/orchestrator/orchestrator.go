// Package orchestrator coordinates one report run.
// Flow: cadence decision → load state → price pass → hiring pass (gated) →
// persist → compose → publish.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"time"

	"market-pulse/internal/cadence"
	"market-pulse/internal/delta"
	"market-pulse/internal/domain"
	"market-pulse/internal/reference"
	"market-pulse/internal/reporting"
	"market-pulse/internal/sources"
)

// Publisher delivers a composed report. Delivery failure is logged, never
// fatal: the run's computation stands even when the message is lost.
type Publisher interface {
	Publish(ctx context.Context, r *reporting.Report) error
}

// Orchestrator executes one run over the watchlist, sequentially. Runs are
// externally serialized (cron-style single instance); there is no locking of
// the persisted store.
type Orchestrator struct {
	sectors   []domain.Sector
	prices    sources.PriceSource
	hiring    sources.HiringSource
	keeper    *reference.Keeper
	publisher Publisher

	intervalDays int
	pace         func(context.Context) // delay between consecutive hiring fetches, nil = none
	now          func() time.Time
}

// Options for creating an Orchestrator.
type Options struct {
	Sectors []domain.Sector
	Prices  sources.PriceSource
	Hiring  sources.HiringSource
	Keeper  *reference.Keeper

	// Publisher is optional; nil skips delivery (dry runs, previews).
	Publisher Publisher

	// IntervalDays between hiring passes; 0 means cadence.DefaultIntervalDays.
	IntervalDays int

	// Pace is called between consecutive hiring fetches. Nil means no pause.
	Pace func(context.Context)
}

// New creates an Orchestrator.
func New(opts Options) *Orchestrator {
	intervalDays := opts.IntervalDays
	if intervalDays <= 0 {
		intervalDays = cadence.DefaultIntervalDays
	}
	return &Orchestrator{
		sectors:      opts.Sectors,
		prices:       opts.Prices,
		hiring:       opts.Hiring,
		keeper:       opts.Keeper,
		publisher:    opts.Publisher,
		intervalDays: intervalDays,
		pace:         opts.Pace,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// RunResult contains results from one run. Errors collects soft failures
// (skipped entities, persistence, delivery) that did not stop the run.
type RunResult struct {
	Report *reporting.Report

	PricesFetched     int
	HiringFetched     int
	BaselinesCaptured int
	HiringRefreshed   bool
	Errors            []string
}

// Run executes one full cycle. Per-entity fetch failures are swallowed here
// and surface only as omitted rows; the returned error is reserved for
// failures that prevent composing a report at all (currently none).
func (o *Orchestrator) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}
	today := o.now()
	date := today.Format(cadence.DateLayout)

	if err := o.keeper.Load(ctx); err != nil {
		// Unreadable state is treated as a first run; deltas restart from
		// today's observations.
		log.Printf("state load failed, starting from empty state: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("load state: %v", err))
	}

	refresh := cadence.ShouldRefreshHiring(o.keeper.LastHiringRefresh(), today, o.intervalDays)

	log.Printf("price pass: %d sectors", len(o.sectors))
	priceDeltas := make(map[string]domain.PriceDelta)
	for _, sector := range o.sectors {
		for _, e := range sector.Entities {
			obs, err := o.prices.Quote(ctx, e.Ticker)
			if err != nil {
				log.Printf("  skip %s: %v", e.Ticker, err)
				continue
			}
			ref, captured := o.keeper.GetOrCapturePriceBaseline(e.Ticker, obs.Price)
			if captured {
				result.BaselinesCaptured++
			}
			priceDeltas[e.Ticker] = delta.Price(e, obs, ref, captured)
			result.PricesFetched++
		}
	}
	log.Printf("  %d/%d quotes fetched", result.PricesFetched, entityCount(o.sectors))

	var hiringDeltas map[string]domain.HiringDelta
	if refresh {
		log.Printf("hiring pass: gate open (last refresh %q)", o.keeper.LastHiringRefresh())
		hiringDeltas = make(map[string]domain.HiringDelta)
		first := true
		for _, sector := range o.sectors {
			for _, e := range sector.Entities {
				if !first && o.pace != nil {
					o.pace(ctx)
				}
				first = false

				obs, err := o.hiring.OpenPositions(ctx, e.Company)
				if err != nil {
					log.Printf("  skip %s: %v", e.Company, err)
					continue
				}
				ref, captured := o.keeper.GetOrCaptureHiringBaseline(e.Ticker, obs.OpenPositions)
				if captured {
					result.BaselinesCaptured++
				}
				hiringDeltas[e.Ticker] = delta.Hiring(e, obs, ref, captured)
				result.HiringFetched++
			}
		}
		// The pass ran today even if individual fetches failed; entities
		// without a baseline stay un-baselined until a fetch succeeds.
		o.keeper.MarkHiringRefreshed(date)
		result.HiringRefreshed = true
		log.Printf("  %d/%d counts fetched", result.HiringFetched, entityCount(o.sectors))
	} else {
		log.Printf("hiring pass: gate closed (last refresh %s)", o.keeper.LastHiringRefresh())
	}

	if err := o.keeper.PersistIfDirty(ctx); err != nil {
		// The report still goes out; next run re-captures whatever was lost.
		log.Printf("state persist failed: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("persist state: %v", err))
	}

	result.Report = reporting.Compose(date, o.sectors, priceDeltas, hiringDeltas)

	if o.publisher != nil {
		if err := o.publisher.Publish(ctx, result.Report); err != nil {
			log.Printf("report delivery failed: %v", err)
			result.Errors = append(result.Errors, fmt.Sprintf("publish report: %v", err))
		}
	}

	return result, nil
}

func entityCount(sectors []domain.Sector) int {
	n := 0
	for _, s := range sectors {
		n += len(s.Entities)
	}
	return n
}
