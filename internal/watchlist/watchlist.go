// Package watchlist defines the static sector-grouped set of tracked entities.
// The watchlist is configuration: core components receive it by value and
// never look it up ambiently.
package watchlist

import (
	"encoding/json"
	"fmt"
	"os"

	"market-pulse/internal/domain"
)

// Default returns the built-in watchlist: three sectors, ten tickers each.
func Default() []domain.Sector {
	return []domain.Sector{
		{
			Name: "Semiconductor",
			Entities: []domain.TrackedEntity{
				{Ticker: "NVDA", Company: "NVIDIA"},
				{Ticker: "TSM", Company: "TSMC"},
				{Ticker: "ASML", Company: "ASML"},
				{Ticker: "AMD", Company: "AMD"},
				{Ticker: "INTC", Company: "Intel"},
				{Ticker: "AVGO", Company: "Broadcom"},
				{Ticker: "QCOM", Company: "Qualcomm"},
				{Ticker: "TXN", Company: "Texas Instruments"},
				{Ticker: "MU", Company: "Micron Technology"},
				{Ticker: "ADI", Company: "Analog Devices"},
			},
		},
		{
			Name: "AI",
			Entities: []domain.TrackedEntity{
				{Ticker: "MSFT", Company: "Microsoft"},
				{Ticker: "GOOG", Company: "Google"},
				{Ticker: "AMZN", Company: "Amazon"},
				{Ticker: "META", Company: "Meta"},
				{Ticker: "ORCL", Company: "Oracle"},
				{Ticker: "IBM", Company: "IBM"},
				{Ticker: "CRM", Company: "Salesforce"},
				{Ticker: "NOW", Company: "ServiceNow"},
				{Ticker: "PATH", Company: "UiPath"},
				{Ticker: "AI", Company: "C3.ai"},
			},
		},
		{
			Name: "Defense",
			Entities: []domain.TrackedEntity{
				{Ticker: "LMT", Company: "Lockheed Martin"},
				{Ticker: "RTX", Company: "Raytheon Technologies"},
				{Ticker: "BA", Company: "Boeing"},
				{Ticker: "GD", Company: "General Dynamics"},
				{Ticker: "NOC", Company: "Northrop Grumman"},
				{Ticker: "HII", Company: "Huntington Ingalls Industries"},
				{Ticker: "LHX", Company: "L3Harris Technologies"},
				{Ticker: "KBR", Company: "KBR"},
				{Ticker: "LDOS", Company: "Leidos"},
				{Ticker: "BWXT", Company: "BWX Technologies"},
			},
		},
	}
}

// LoadFile reads a watchlist from a JSON file. The file is an ordered array of
// sectors, each with an ordered array of entities:
//
//	[{"sector": "Semiconductor", "entities": [{"ticker": "NVDA", "company": "NVIDIA"}, ...]}, ...]
func LoadFile(path string) ([]domain.Sector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watchlist file: %w", err)
	}

	var sectors []domain.Sector
	if err := json.Unmarshal(data, &sectors); err != nil {
		return nil, fmt.Errorf("parse watchlist file: %w", err)
	}

	if err := Validate(sectors); err != nil {
		return nil, err
	}
	return sectors, nil
}

// Validate checks structural integrity: no empty names, no duplicate tickers.
// Tickers are the baseline key space, so a duplicate would silently merge two
// entities' reference values.
func Validate(sectors []domain.Sector) error {
	if len(sectors) == 0 {
		return fmt.Errorf("watchlist is empty")
	}

	seen := make(map[string]string)
	for _, sector := range sectors {
		if sector.Name == "" {
			return fmt.Errorf("sector with empty name")
		}
		for _, e := range sector.Entities {
			if e.Ticker == "" {
				return fmt.Errorf("sector %q: entity with empty ticker", sector.Name)
			}
			if e.Company == "" {
				return fmt.Errorf("sector %q: ticker %s has no company name", sector.Name, e.Ticker)
			}
			if prev, ok := seen[e.Ticker]; ok {
				return fmt.Errorf("ticker %s appears in both %q and %q", e.Ticker, prev, sector.Name)
			}
			seen[e.Ticker] = sector.Name
		}
	}
	return nil
}
