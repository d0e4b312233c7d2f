package reporting

import "market-pulse/internal/domain"

// Compose assembles one run's delta maps into a Report. Stateless per call.
//
// Entities missing from priceDeltas (their fetch failed this run) are omitted
// from their sector's rows rather than rendered with a placeholder. A nil
// hiringDeltas means the cadence gate was closed: HiringIncluded is false and
// no hiring section is built. A non-nil map with missing entities likewise
// omits just those entities; partial hiring data is not an error.
func Compose(date string, sectors []domain.Sector, priceDeltas map[string]domain.PriceDelta, hiringDeltas map[string]domain.HiringDelta) *Report {
	report := &Report{
		Date:    date,
		Sectors: make([]SectorPrices, 0, len(sectors)),
	}

	for _, sector := range sectors {
		sp := SectorPrices{
			Sector: sector.Name,
			Rows:   make([]domain.PriceDelta, 0, len(sector.Entities)),
		}
		for _, e := range sector.Entities {
			if d, ok := priceDeltas[e.Ticker]; ok {
				sp.Rows = append(sp.Rows, d)
			}
		}
		report.Sectors = append(report.Sectors, sp)
	}

	if hiringDeltas == nil {
		return report
	}

	report.HiringIncluded = true
	report.Hiring = make([]SectorHiring, 0, len(sectors))
	for _, sector := range sectors {
		sh := SectorHiring{
			Sector: sector.Name,
			Rows:   make([]domain.HiringDelta, 0, len(sector.Entities)),
		}
		for _, e := range sector.Entities {
			if d, ok := hiringDeltas[e.Ticker]; ok {
				sh.Rows = append(sh.Rows, d)
			}
		}
		report.Hiring = append(report.Hiring, sh)
	}

	return report
}
