package core

import (
	"math"

	"gongu/internal/campaign"
)

type (
	// OptionStat is the aggregated amount and share for one configured
	// vote option, in configured order.
	OptionStat struct {
		Name    string
		Amount  int64
		Percent float64
		Color   string
	}

	// WeekStats is the derived, display-ready summary for one week. It is
	// recomputed from scratch on every query and never patched
	// incrementally, so any sequence of inserts, edits and deletes that
	// leads to the same snapshot yields the same stats.
	WeekStats struct {
		WeekOrdinal     int
		WeekTotal       int64
		ValidTotal      int64
		InvalidSum      int64
		PerOption       []OptionStat
		CumulativeTotal int64
		GoalPercent     float64
	}
)

// Aggregate computes WeekStats for the selected week over a full snapshot of
// the contribution set.
//
// A contribution whose VoteOption names no option configured for the week is
// folded into InvalidSum even if it was valid when classified: the stored
// classification is a cache and is never trusted against a possibly-changed
// configuration. An empty snapshot yields all-zero statistics.
func Aggregate(txs []Contribution, selectedWeek int, camp campaign.Campaign) WeekStats {
	stats := WeekStats{WeekOrdinal: selectedWeek}

	var options []campaign.VoteOption
	if w, ok := camp.Window(selectedWeek); ok {
		options = w.Options
	}

	sums := make(map[string]int64, len(options))
	for _, opt := range options {
		sums[opt.Name] = 0
	}

	for _, t := range txs {
		if t.WeekOrdinal != selectedWeek {
			continue
		}
		stats.WeekTotal += t.Amount.Units
		if _, ok := sums[t.VoteOption]; ok {
			sums[t.VoteOption] += t.Amount.Units
		} else {
			stats.InvalidSum += t.Amount.Units
		}
	}
	stats.ValidTotal = stats.WeekTotal - stats.InvalidSum

	stats.PerOption = make([]OptionStat, len(options))
	for i, opt := range options {
		amt := sums[opt.Name]
		var pct float64
		if stats.ValidTotal > 0 {
			pct = round1(float64(amt) / float64(stats.ValidTotal) * 100)
		}
		stats.PerOption[i] = OptionStat{
			Name:    opt.Name,
			Amount:  amt,
			Percent: pct,
			Color:   camp.Color(i),
		}
	}

	for _, t := range txs {
		if t.WeekOrdinal >= 1 && t.WeekOrdinal <= selectedWeek {
			stats.CumulativeTotal += t.Amount.Units
		}
	}
	if camp.GoalAmount > 0 {
		pct := round1(float64(stats.CumulativeTotal) / float64(camp.GoalAmount) * 100)
		stats.GoalPercent = math.Min(100, pct)
	}

	return stats
}

// round1 rounds to one decimal place, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
