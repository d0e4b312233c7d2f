package domain

import "github.com/shopspring/decimal"

// PriceObservation is one run's reading from the market-data provider.
// IntradayChangePct is the same-session percentage move as reported upstream;
// it is never recomputed locally.
type PriceObservation struct {
	Price             decimal.Decimal
	IntradayChangePct decimal.Decimal
}

// HiringObservation is one run's open-position count from the hiring provider.
type HiringObservation struct {
	OpenPositions int
}
