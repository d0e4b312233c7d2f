package reporting

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Daily Stock & Job Market Report - %s\n\n", r.Date))
	sb.WriteString("Reference values are locked on first observation; \"Vs Reference\" is change since tracking began.\n\n")

	sb.WriteString("## Stock Performance\n\n")
	for _, sector := range r.Sectors {
		sb.WriteString(fmt.Sprintf("### %s\n\n", sector.Sector))
		if len(sector.Rows) == 0 {
			sb.WriteString("No price data available for this sector today.\n\n")
			continue
		}
		sb.WriteString("| Symbol | Current Price | Vs Reference | Intraday |\n")
		sb.WriteString("|--------|---------------|--------------|----------|\n")
		for _, row := range sector.Rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				row.Entity.Ticker,
				Money(row.Price),
				SignedPct(row.PctVsReference),
				SignedPct(row.PctIntraday)))
		}
		sb.WriteString("\n")
	}

	if !r.HiringIncluded {
		return sb.String()
	}

	sb.WriteString("## Job Market Trends\n\n")
	for _, sector := range r.Hiring {
		sb.WriteString(fmt.Sprintf("### %s\n\n", sector.Sector))
		if len(sector.Rows) == 0 {
			sb.WriteString("No hiring data available for this sector today.\n\n")
			continue
		}
		sb.WriteString("| Company | Open Positions | Vs Reference |\n")
		sb.WriteString("|---------|----------------|--------------|\n")
		for _, row := range sector.Rows {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n",
				row.Entity.Company,
				row.OpenPositions,
				SignedPct(row.PctVsReference)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
