package workbook

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestWeekOfBounds(t *testing.T) {
	r := NewResolver(time.UTC)

	tests := []struct {
		name      string
		input     time.Time
		wantStart string
		wantEnd   string
	}{
		{"monday", date(2020, time.May, 4), "2020-05-04", "2020-05-10"},
		{"midweek", date(2020, time.May, 6), "2020-05-04", "2020-05-10"},
		{"sunday", date(2020, time.May, 10), "2020-05-04", "2020-05-10"},
		{"year boundary from december", date(2024, time.December, 31), "2024-12-30", "2025-01-05"},
		{"year boundary from january", date(2026, time.January, 1), "2025-12-29", "2026-01-04"},
		{"month boundary", date(2025, time.July, 2), "2025-06-30", "2025-07-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := r.WeekOf(tt.input)

			if got := week.Start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, expected %s", got, tt.wantStart)
			}
			if got := week.End.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("end = %s, expected %s", got, tt.wantEnd)
			}
			if week.Start.Weekday() != time.Monday {
				t.Errorf("start weekday = %s, expected Monday", week.Start.Weekday())
			}
			if !week.End.Equal(week.Start.AddDate(0, 0, 6)) {
				t.Errorf("end %v is not start + 6 days", week.End)
			}
		})
	}
}

func TestResolveWeekendSkip(t *testing.T) {
	r := NewResolver(time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		allowSkip bool
		wantStart string
	}{
		{"saturday skips to next week", date(2025, time.March, 8), true, "2025-03-10"},
		{"friday skips to next week", date(2025, time.March, 7), true, "2025-03-10"},
		{"sunday skips to next week", date(2025, time.March, 9), true, "2025-03-10"},
		{"thursday stays", date(2025, time.March, 6), true, "2025-03-03"},
		{"saturday without skip stays", date(2025, time.March, 8), false, "2025-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := r.Resolve(tt.now, tt.allowSkip)
			if got := week.Start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, expected %s", got, tt.wantStart)
			}
		})
	}
}

func TestWeekKey(t *testing.T) {
	r := NewResolver(time.UTC)

	week := r.WeekOf(date(2020, time.May, 6))
	if got := week.Key(); got != "04/05-10/05" {
		t.Errorf("key = %q, expected %q", got, "04/05-10/05")
	}

	boundary := r.WeekOf(date(2024, time.December, 31))
	if got := boundary.Key(); got != "30/12-05/01" {
		t.Errorf("key = %q, expected %q", got, "30/12-05/01")
	}
}
