package reporting

import "market-pulse/internal/domain"

// Report is the composed artifact for one run. Sector order and in-sector
// row order follow the watchlist, so two runs over identical inputs produce
// structurally identical reports.
type Report struct {
	// Date of the run, YYYY-MM-DD.
	Date string

	// Sectors holds price rows grouped by sector. A sector whose fetches all
	// failed is present with an empty row list, not absent.
	Sectors []SectorPrices

	// HiringIncluded is false on non-cadence days; the hiring section is then
	// not built at all. A stock-only report is a fully valid output.
	HiringIncluded bool
	Hiring         []SectorHiring
}

// SectorPrices holds one sector's price deltas in watchlist order.
type SectorPrices struct {
	Sector string
	Rows   []domain.PriceDelta
}

// SectorHiring holds one sector's hiring deltas in watchlist order.
type SectorHiring struct {
	Sector string
	Rows   []domain.HiringDelta
}
