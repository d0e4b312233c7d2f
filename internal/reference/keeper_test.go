package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/storage/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoad_MissingStoreIsFirstRun(t *testing.T) {
	k := NewKeeper(memory.NewStateStore())

	if err := k.Load(context.Background()); err != nil {
		t.Fatalf("expected missing store to be a normal first run, got %v", err)
	}
	if k.Dirty() {
		t.Error("expected freshly loaded state to be clean")
	}
}

func TestLoad_UnreadableStoreFallsBackToEmpty(t *testing.T) {
	backend := memory.NewStateStore()
	backend.FailLoadWith(errors.New("disk on fire"))
	k := NewKeeper(backend)

	err := k.Load(context.Background())
	if err == nil {
		t.Fatal("expected the read failure to be surfaced for logging")
	}

	// The keeper must remain usable on an empty state
	ref, captured := k.GetOrCapturePriceBaseline("NVDA", dec("100"))
	if !captured || !ref.Equal(dec("100")) {
		t.Errorf("expected capture on empty fallback state, got (%s, %v)", ref, captured)
	}
}

func TestGetOrCapturePriceBaseline_CapturesOnce(t *testing.T) {
	k := NewKeeper(memory.NewStateStore())
	_ = k.Load(context.Background())

	ref, captured := k.GetOrCapturePriceBaseline("NVDA", dec("100.00"))
	if !captured {
		t.Fatal("expected first observation to capture the baseline")
	}
	if !ref.Equal(dec("100.00")) {
		t.Errorf("expected captured baseline 100.00, got %s", ref)
	}

	// Later observations never overwrite the stored value
	ref, captured = k.GetOrCapturePriceBaseline("NVDA", dec("250.00"))
	if captured {
		t.Error("expected no re-capture for an existing baseline")
	}
	if !ref.Equal(dec("100.00")) {
		t.Errorf("expected stored baseline 100.00 to survive, got %s", ref)
	}
}

func TestBaselineStability_AcrossRuns(t *testing.T) {
	backend := memory.NewStateStore()
	ctx := context.Background()

	// Run 1 captures and persists
	k1 := NewKeeper(backend)
	_ = k1.Load(ctx)
	k1.GetOrCapturePriceBaseline("NVDA", dec("100.00"))
	k1.GetOrCaptureHiringBaseline("NVDA", 50)
	if err := k1.PersistIfDirty(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}

	// Runs 2..n see the original values whatever they observe
	for _, observed := range []string{"110.00", "90.00", "480.00"} {
		k := NewKeeper(backend)
		_ = k.Load(ctx)
		ref, captured := k.GetOrCapturePriceBaseline("NVDA", dec(observed))
		if captured || !ref.Equal(dec("100.00")) {
			t.Errorf("observed %s: expected stable baseline 100.00, got (%s, %v)", observed, ref, captured)
		}
		count, captured := k.GetOrCaptureHiringBaseline("NVDA", 999)
		if captured || count != 50 {
			t.Errorf("expected stable hiring baseline 50, got (%d, %v)", count, captured)
		}
	}
}

func TestHiringAndPriceKeysAreIndependent(t *testing.T) {
	k := NewKeeper(memory.NewStateStore())
	_ = k.Load(context.Background())

	k.GetOrCapturePriceBaseline("NVDA", dec("100.00"))

	// A price baseline for a ticker does not imply a hiring baseline
	count, captured := k.GetOrCaptureHiringBaseline("NVDA", 50)
	if !captured || count != 50 {
		t.Errorf("expected independent hiring capture, got (%d, %v)", count, captured)
	}
}

func TestPersistIfDirty_WriteAvoidance(t *testing.T) {
	backend := memory.NewStateStore()
	backend.Seed(&domain.PersistedState{
		PriceBaselines:    map[string]decimal.Decimal{"NVDA": dec("100.00")},
		HiringBaselines:   map[string]int{"NVDA": 50},
		LastHiringRefresh: "2025-01-04",
	})

	ctx := context.Background()
	k := NewKeeper(backend)
	_ = k.Load(ctx)

	// Nothing new observed: reads and a same-date mark leave the state clean
	k.GetOrCapturePriceBaseline("NVDA", dec("120.00"))
	k.GetOrCaptureHiringBaseline("NVDA", 60)
	k.MarkHiringRefreshed("2025-01-04")

	if k.Dirty() {
		t.Fatal("expected state to stay clean when nothing changed")
	}
	if err := k.PersistIfDirty(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if backend.PersistCalls() != 0 {
		t.Errorf("expected no write for a clean state, got %d", backend.PersistCalls())
	}
}

func TestPersistIfDirty_WritesOnce(t *testing.T) {
	backend := memory.NewStateStore()
	ctx := context.Background()
	k := NewKeeper(backend)
	_ = k.Load(ctx)

	k.GetOrCapturePriceBaseline("NVDA", dec("100.00"))
	k.MarkHiringRefreshed("2025-01-04")

	if err := k.PersistIfDirty(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}
	// A second call on the now-clean state is a no-op
	if err := k.PersistIfDirty(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if backend.PersistCalls() != 1 {
		t.Errorf("expected exactly one write, got %d", backend.PersistCalls())
	}
}

func TestPersistIfDirty_FailureKeepsInMemoryState(t *testing.T) {
	backend := memory.NewStateStore()
	backend.FailPersistWith(errors.New("disk full"))

	ctx := context.Background()
	k := NewKeeper(backend)
	_ = k.Load(ctx)
	k.GetOrCapturePriceBaseline("NVDA", dec("100.00"))

	if err := k.PersistIfDirty(ctx); err == nil {
		t.Fatal("expected write failure to be surfaced")
	}

	// This run's deltas still reference the captured value
	ref, captured := k.GetOrCapturePriceBaseline("NVDA", dec("200.00"))
	if captured || !ref.Equal(dec("100.00")) {
		t.Errorf("expected in-memory capture to survive the failed write, got (%s, %v)", ref, captured)
	}
}

func TestMarkHiringRefreshed_AdvancesDate(t *testing.T) {
	k := NewKeeper(memory.NewStateStore())
	_ = k.Load(context.Background())

	if k.LastHiringRefresh() != "" {
		t.Errorf("expected empty initial refresh date, got %q", k.LastHiringRefresh())
	}

	k.MarkHiringRefreshed("2025-01-04")
	if k.LastHiringRefresh() != "2025-01-04" {
		t.Errorf("expected refresh date 2025-01-04, got %q", k.LastHiringRefresh())
	}
	if !k.Dirty() {
		t.Error("expected mark to dirty the state")
	}
}
