// Package cadence decides whether the lower-frequency hiring pass runs on a
// given day. Pure functions only: no clock, no I/O, so the gate is testable
// without mocking time or storage.
package cadence

import "time"

// DefaultIntervalDays is the default number of calendar days between hiring
// passes.
const DefaultIntervalDays = 10

// DateLayout is the wire format for dates in the persisted state.
const DateLayout = "2006-01-02"

// ShouldRefreshHiring reports whether the hiring pass should run today.
// lastRefresh is the YYYY-MM-DD date of the previous pass, or "" when it has
// never run. The boundary is inclusive: exactly intervalDays elapsed already
// triggers a refresh. A malformed stored date is treated as never run.
func ShouldRefreshHiring(lastRefresh string, today time.Time, intervalDays int) bool {
	if lastRefresh == "" {
		return true
	}
	last, err := time.Parse(DateLayout, lastRefresh)
	if err != nil {
		return true
	}
	return daysBetween(last, today) >= intervalDays
}

// daysBetween counts whole calendar days from a to b, ignoring time of day
// and zone.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
