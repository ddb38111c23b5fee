package core

import (
	"testing"

	"gongu/internal/campaign"
)

func TestResolveWeek(t *testing.T) {
	camp := campaign.Default()

	cases := []struct {
		date string
		want int
	}{
		{"2026-02-13", 1}, // first day of week 1, inclusive
		{"2026-02-19", 1}, // last day of week 1, inclusive
		{"2026-02-20", 2},
		{"2026-03-01", 3}, // inside week 3's 2/27-3/5 window
		{"2026-03-12", 4},
		{"2026-01-01", 0}, // before any window
		{"2026-02-12", 0}, // day before campaign start
		{"2026-03-13", 0}, // day after campaign end
		{"2027-06-01", 0},
	}
	for i, tc := range cases {
		if got := ResolveWeek(tc.date, camp); got != tc.want {
			t.Errorf("case %d: ResolveWeek(%q) = %d, want %d", i, tc.date, got, tc.want)
		}
	}
}

func TestResolveWeekCoversEveryConfiguredDay(t *testing.T) {
	camp := campaign.Default()
	for _, w := range camp.Weeks {
		for _, d := range []string{w.Start, w.End} {
			if got := ResolveWeek(d, camp); got != w.Ordinal {
				t.Errorf("ResolveWeek(%q) = %d, want %d", d, got, w.Ordinal)
			}
		}
	}
}
