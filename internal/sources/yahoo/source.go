// Package yahoo implements sources.PriceSource on Yahoo Finance quotes.
package yahoo

import (
	"context"
	"fmt"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/sources"
)

// Source fetches regular-market quotes from Yahoo Finance.
type Source struct{}

// New creates a Yahoo Finance price source. No API key is required.
func New() *Source {
	return &Source{}
}

// Quote returns the latest regular-market price and same-session percentage
// change for ticker. A quote with no price (holiday, delisted symbol) maps to
// sources.ErrUnavailable.
//
// The underlying client does not accept a context; cancellation between
// entities is handled by the caller's loop.
func (s *Source) Quote(_ context.Context, ticker string) (domain.PriceObservation, error) {
	q, err := quote.Get(ticker)
	if err != nil {
		return domain.PriceObservation{}, fmt.Errorf("yahoo quote %s: %w", ticker, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return domain.PriceObservation{}, sources.ErrUnavailable
	}

	return domain.PriceObservation{
		Price:             decimal.NewFromFloat(q.RegularMarketPrice),
		IntradayChangePct: decimal.NewFromFloat(q.RegularMarketChangePercent),
	}, nil
}

var _ sources.PriceSource = (*Source)(nil)
