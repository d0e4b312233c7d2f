package domain

import "github.com/shopspring/decimal"

// PersistedState is the durable aggregate of all baselines plus the date of
// the last hiring refresh. A baseline is the first successfully observed value
// for an entity and is never overwritten once captured; the two baseline kinds
// are keyed independently by ticker.
//
// The JSON field names are the wire format of the state file and must
// round-trip losslessly across load/persist cycles.
type PersistedState struct {
	PriceBaselines    map[string]decimal.Decimal `json:"stock_references"`
	HiringBaselines   map[string]int             `json:"job_references"`
	LastHiringRefresh string                     `json:"last_hiring_refresh,omitempty"` // YYYY-MM-DD, "" = never
}

// NewPersistedState returns an empty state with initialized maps.
func NewPersistedState() *PersistedState {
	return &PersistedState{
		PriceBaselines:  make(map[string]decimal.Decimal),
		HiringBaselines: make(map[string]int),
	}
}

// Normalize ensures both maps are non-nil after decoding from storage.
func (s *PersistedState) Normalize() {
	if s.PriceBaselines == nil {
		s.PriceBaselines = make(map[string]decimal.Decimal)
	}
	if s.HiringBaselines == nil {
		s.HiringBaselines = make(map[string]int)
	}
}
