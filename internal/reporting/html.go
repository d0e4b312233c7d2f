package reporting

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
)

const htmlStyle = `body { font-family: Arial, sans-serif; }
h2 { color: #1a0dab; }
h3 { color: #174ea6; border-bottom: 1px solid #eee; padding-bottom: 5px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
th { background-color: #f2f2f2; text-align: left; padding: 12px; font-weight: bold; }
td { padding: 10px; border-bottom: 1px solid #ddd; }
tr:hover { background-color: #f5f5f5; }
.positive { color: green; font-weight: bold; }
.negative { color: red; font-weight: bold; }
.section { background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
.note { color: #666; font-size: 0.9em; margin-top: 20px; }`

// RenderHTML renders the report as the HTML email body: styled per-sector
// tables with color-coded signed percentages.
func RenderHTML(r *Report) string {
	var sb strings.Builder

	sb.WriteString("<html><head><style>\n")
	sb.WriteString(htmlStyle)
	sb.WriteString("\n</style></head><body>\n")
	sb.WriteString(fmt.Sprintf("<h2>Daily Stock &amp; Job Market Report (%s)</h2>\n", r.Date))
	sb.WriteString("<p>Track investment opportunities through stock performance and hiring trends</p>\n")

	sb.WriteString("<div class=\"section\">\n<h3>Stock Performance Analysis</h3>\n")
	sb.WriteString("<p>Reference prices are locked from the initial run date. Changes show performance vs this reference.</p>\n")
	for _, sector := range r.Sectors {
		sb.WriteString(fmt.Sprintf("<h4>%s Sector</h4>\n", html.EscapeString(sector.Sector)))
		if len(sector.Rows) == 0 {
			sb.WriteString("<p>No price data available today.</p>\n")
			continue
		}
		sb.WriteString("<table>\n<tr><th>Symbol</th><th>Current Price</th><th>Change vs Reference</th><th>Daily Change</th></tr>\n")
		for _, row := range sector.Rows {
			sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(row.Entity.Ticker),
				Money(row.Price),
				coloredPct(row.PctVsReference),
				coloredPct(row.PctIntraday)))
		}
		sb.WriteString("</table>\n")
	}
	sb.WriteString("</div>\n")

	if r.HiringIncluded {
		sb.WriteString("<div class=\"section\">\n<h3>Job Market Trends</h3>\n")
		sb.WriteString("<p>Tracking hiring activity as an indicator of company growth and investment potential</p>\n")
		for _, sector := range r.Hiring {
			sb.WriteString(fmt.Sprintf("<h4>%s Sector</h4>\n", html.EscapeString(sector.Sector)))
			if len(sector.Rows) == 0 {
				sb.WriteString("<p>No hiring data available today.</p>\n")
				continue
			}
			sb.WriteString("<table>\n<tr><th>Company</th><th>Current Jobs</th><th>Change vs Reference</th></tr>\n")
			for _, row := range sector.Rows {
				sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%s</td></tr>\n",
					html.EscapeString(row.Entity.Company),
					row.OpenPositions,
					coloredPct(row.PctVsReference)))
			}
			sb.WriteString("</table>\n")
		}
		sb.WriteString("</div>\n")
	}

	sb.WriteString("<div class=\"note\">\n")
	sb.WriteString("<p>Note: reference values are set on the first run and held fixed thereafter.</p>\n")
	sb.WriteString("</div>\n</body></html>\n")

	return sb.String()
}

// coloredPct wraps a signed percentage in a positive/negative span. Zero is
// rendered positive, matching the "+0.00%" text form.
func coloredPct(d decimal.Decimal) string {
	class := "positive"
	if d.IsNegative() {
		class = "negative"
	}
	return fmt.Sprintf("<span class=\"%s\">%s</span>", class, SignedPct(d))
}
