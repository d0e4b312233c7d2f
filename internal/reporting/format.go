package reporting

import "github.com/shopspring/decimal"

// SignedPct formats a percentage with two decimals and an explicit sign,
// e.g. "+10.00%" / "-3.25%". Zero renders as "+0.00%".
func SignedPct(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}

// Money formats a price as a dollar amount with two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
