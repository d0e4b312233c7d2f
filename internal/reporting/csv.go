package reporting

import (
	"fmt"
	"strings"
)

// RenderPriceCSV renders the price section as CSV, one row per entity, in
// report order.
func RenderPriceCSV(r *Report) string {
	var sb strings.Builder

	sb.WriteString("date,sector,ticker,price,pct_vs_reference,pct_intraday\n")
	for _, sector := range r.Sectors {
		for _, row := range sector.Rows {
			sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
				r.Date,
				sector.Sector,
				row.Entity.Ticker,
				row.Price.StringFixed(2),
				row.PctVsReference.StringFixed(4),
				row.PctIntraday.StringFixed(4)))
		}
	}

	return sb.String()
}

// RenderHiringCSV renders the hiring section as CSV. Returns an empty string
// when the report has no hiring section.
func RenderHiringCSV(r *Report) string {
	if !r.HiringIncluded {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("date,sector,ticker,company,open_positions,pct_vs_reference\n")
	for _, sector := range r.Hiring {
		for _, row := range sector.Rows {
			sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d,%s\n",
				r.Date,
				sector.Sector,
				row.Entity.Ticker,
				csvField(row.Entity.Company),
				row.OpenPositions,
				row.PctVsReference.StringFixed(4)))
		}
	}

	return sb.String()
}

// csvField quotes a value that contains a comma.
func csvField(s string) string {
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
