package core

import (
	"time"

	"gongu/internal/campaign"
)

const (
	CountdownClosed        CountdownState = "closed"
	CountdownDueToday      CountdownState = "due_today"
	CountdownDaysRemaining CountdownState = "days_remaining"
)

type (
	CountdownState string

	// Countdown is the remaining-time state for a week window. Days is
	// meaningful only when State is CountdownDaysRemaining.
	Countdown struct {
		State CountdownState
		Days  int
	}
)

// CountdownFor derives the countdown state for a week window relative to
// now. The window closes at the last instant of its end date's calendar day
// in now's location. The result depends on wall-clock time and must be
// recomputed on every query, never cached.
//
// An ordinal with no configured window reports closed.
func CountdownFor(weekOrdinal int, camp campaign.Campaign, now time.Time) Countdown {
	w, ok := camp.Window(weekOrdinal)
	if !ok {
		return Countdown{State: CountdownClosed}
	}
	end, err := time.ParseInLocation("2006-01-02", w.End, now.Location())
	if err != nil {
		return Countdown{State: CountdownClosed}
	}
	endOfWindow := end.Add(24*time.Hour - time.Nanosecond)

	if endOfWindow.Before(now) {
		return Countdown{State: CountdownClosed}
	}
	days := int(endOfWindow.Sub(now) / (24 * time.Hour))
	if days == 0 {
		return Countdown{State: CountdownDueToday}
	}
	return Countdown{State: CountdownDaysRemaining, Days: days}
}
