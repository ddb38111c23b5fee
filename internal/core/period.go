package core

import "gongu/internal/campaign"

// ResolveWeek maps a calendar date to a week ordinal. It returns the ordinal
// of the first configured window whose inclusive [start, end] range contains
// the date, or WeekOutOfRange when no window matches.
//
// Dates are zero-padded ISO strings, so plain string comparison is calendar
// comparison. Malformed dates are not detected here; the input boundary
// rejects them before they reach the resolver.
func ResolveWeek(date string, c campaign.Campaign) int {
	for _, w := range c.Weeks {
		if date >= w.Start && date <= w.End {
			return w.Ordinal
		}
	}
	return WeekOutOfRange
}
