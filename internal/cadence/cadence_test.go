package cadence

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestShouldRefreshHiring_NeverRun(t *testing.T) {
	// No stored date means the pass has never run
	if !ShouldRefreshHiring("", date(2025, 1, 4), 10) {
		t.Error("expected refresh when last refresh is absent")
	}
}

func TestShouldRefreshHiring_ExactBoundary(t *testing.T) {
	// Exactly intervalDays elapsed triggers a refresh (inclusive boundary)
	if !ShouldRefreshHiring("2025-01-04", date(2025, 1, 14), 10) {
		t.Error("expected refresh at exactly interval days elapsed")
	}
}

func TestShouldRefreshHiring_OneDayShort(t *testing.T) {
	if ShouldRefreshHiring("2025-01-04", date(2025, 1, 13), 10) {
		t.Error("expected no refresh one day before the boundary")
	}
}

func TestShouldRefreshHiring_SameDay(t *testing.T) {
	if ShouldRefreshHiring("2025-01-04", date(2025, 1, 4), 10) {
		t.Error("expected no refresh on the day of the last refresh")
	}
}

func TestShouldRefreshHiring_LongOverdue(t *testing.T) {
	if !ShouldRefreshHiring("2024-11-01", date(2025, 1, 4), 10) {
		t.Error("expected refresh when well past the interval")
	}
}

func TestShouldRefreshHiring_IgnoresTimeOfDay(t *testing.T) {
	// A refresh late on day D followed by a check early on D+10 still counts
	// ten calendar days
	early := time.Date(2025, 1, 14, 0, 1, 0, 0, time.UTC)
	if !ShouldRefreshHiring("2025-01-04", early, 10) {
		t.Error("expected calendar-day comparison, not 24h periods")
	}
}

func TestShouldRefreshHiring_MalformedDate(t *testing.T) {
	// A corrupted stored date is treated as never run
	if !ShouldRefreshHiring("not-a-date", date(2025, 1, 4), 10) {
		t.Error("expected refresh for malformed stored date")
	}
}

func TestShouldRefreshHiring_MonthBoundary(t *testing.T) {
	if !ShouldRefreshHiring("2025-01-25", date(2025, 2, 4), 10) {
		t.Error("expected refresh across the month boundary")
	}
	if ShouldRefreshHiring("2025-01-26", date(2025, 2, 4), 10) {
		t.Error("expected no refresh at nine days across the month boundary")
	}
}
