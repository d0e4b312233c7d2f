// Package delta computes percentage changes of current observations against
// stored reference values. Pure computation: results are exact decimals,
// never rounded here; formatting belongs to the renderers.
package delta

import (
	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Price combines a fresh price observation with the entity's stored reference.
// The intraday percentage is passed through from the upstream source
// unchanged; it is already a same-session ratio. On the run that captures the
// baseline, reference == observation and the reference delta is exactly zero.
func Price(entity domain.TrackedEntity, obs domain.PriceObservation, reference decimal.Decimal, captured bool) domain.PriceDelta {
	pct := decimal.Zero
	if !reference.IsZero() {
		pct = obs.Price.Sub(reference).Div(reference).Mul(hundred)
	}
	return domain.PriceDelta{
		Entity:            entity,
		Price:             obs.Price,
		PctVsReference:    pct,
		PctIntraday:       obs.IntradayChangePct,
		ReferenceCaptured: captured,
	}
}

// Hiring combines a fresh open-position count with the entity's stored
// reference. A zero reference yields a defined zero delta rather than an
// undefined or infinite result; this masks "growth from zero" as flat and is
// the product's documented behavior, not an omission.
func Hiring(entity domain.TrackedEntity, obs domain.HiringObservation, reference int, captured bool) domain.HiringDelta {
	pct := decimal.Zero
	if reference > 0 {
		pct = decimal.NewFromInt(int64(obs.OpenPositions - reference)).
			Div(decimal.NewFromInt(int64(reference))).
			Mul(hundred)
	}
	return domain.HiringDelta{
		Entity:            entity,
		OpenPositions:     obs.OpenPositions,
		PctVsReference:    pct,
		ReferenceCaptured: captured,
	}
}
