package core

import (
	"strings"

	"gongu/internal/campaign"
)

// ClassifyVote maps a week ordinal and a free-text payer label to a vote
// option name or a sentinel.
//
// An out-of-range ordinal (no configured window) short-circuits to
// VoteOutOfRange without any keyword matching. Otherwise the week's options
// are scanned in configured order and the first option with any keyword
// occurring as a case-sensitive substring of the label wins, even when a
// later option would match more specifically. Keyword curation, not match
// ranking, is what keeps cross-option collisions rare.
func ClassifyVote(weekOrdinal int, label string, c campaign.Campaign) string {
	w, ok := c.Window(weekOrdinal)
	if !ok {
		return VoteOutOfRange
	}
	for _, opt := range w.Options {
		for _, kw := range opt.Keywords {
			if strings.Contains(label, kw) {
				return opt.Name
			}
		}
	}
	return VoteInvalid
}

// Restamp returns a copy of the contribution with WeekOrdinal and VoteOption
// recomputed from its date and payer label. Create and edit paths must go
// through here so the cached classification can never go stale relative to
// the raw fields.
func Restamp(c Contribution, camp campaign.Campaign) Contribution {
	c.WeekOrdinal = ResolveWeek(c.Date, camp)
	c.VoteOption = ClassifyVote(c.WeekOrdinal, c.PayerLabel, camp)
	return c
}
