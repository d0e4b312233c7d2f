// Package stub provides deterministic in-memory sources for tests and the
// preview command.
package stub

import (
	"context"

	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/sources"
)

// PriceSource serves canned price observations keyed by ticker. Tickers with
// no entry behave like a failed fetch.
type PriceSource struct {
	Quotes map[string]domain.PriceObservation
	Errs   map[string]error
}

// Quote returns the canned observation for ticker.
func (s *PriceSource) Quote(_ context.Context, ticker string) (domain.PriceObservation, error) {
	if err, ok := s.Errs[ticker]; ok {
		return domain.PriceObservation{}, err
	}
	obs, ok := s.Quotes[ticker]
	if !ok {
		return domain.PriceObservation{}, sources.ErrUnavailable
	}
	return obs, nil
}

// HiringSource serves canned open-position counts keyed by company name.
type HiringSource struct {
	Counts map[string]int
	Errs   map[string]error
}

// OpenPositions returns the canned count for company.
func (s *HiringSource) OpenPositions(_ context.Context, company string) (domain.HiringObservation, error) {
	if err, ok := s.Errs[company]; ok {
		return domain.HiringObservation{}, err
	}
	count, ok := s.Counts[company]
	if !ok {
		return domain.HiringObservation{}, sources.ErrUnavailable
	}
	return domain.HiringObservation{OpenPositions: count}, nil
}

// Demo builds stub sources covering every watchlist entity with synthetic but
// stable values derived from the ticker, for offline previews.
func Demo(sectors []domain.Sector) (*PriceSource, *HiringSource) {
	prices := &PriceSource{Quotes: make(map[string]domain.PriceObservation)}
	hiring := &HiringSource{Counts: make(map[string]int)}

	for _, sector := range sectors {
		for _, e := range sector.Entities {
			seed := int64(0)
			for _, r := range e.Ticker {
				seed = seed*31 + int64(r)
			}
			price := decimal.NewFromInt(50 + seed%400).Add(decimal.NewFromInt(seed % 100).Div(decimal.NewFromInt(100)))
			intraday := decimal.NewFromInt(seed%7 - 3).Div(decimal.NewFromInt(2))

			prices.Quotes[e.Ticker] = domain.PriceObservation{
				Price:             price,
				IntradayChangePct: intraday,
			}
			hiring.Counts[e.Company] = int(100 + seed%900)
		}
	}

	return prices, hiring
}

var (
	_ sources.PriceSource  = (*PriceSource)(nil)
	_ sources.HiringSource = (*HiringSource)(nil)
)
