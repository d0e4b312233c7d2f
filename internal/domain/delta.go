package domain

import "github.com/shopspring/decimal"

// PriceDelta is the derived result for one entity's price pass. Percentages
// carry sign and are exact; rounding and +/- prefixes belong to the renderers.
// Never persisted.
type PriceDelta struct {
	Entity            TrackedEntity
	Price             decimal.Decimal
	PctVsReference    decimal.Decimal
	PctIntraday       decimal.Decimal
	ReferenceCaptured bool // true on the run that set this entity's baseline
}

// HiringDelta is the derived result for one entity's hiring pass.
type HiringDelta struct {
	Entity            TrackedEntity
	OpenPositions     int
	PctVsReference    decimal.Decimal
	ReferenceCaptured bool
}
