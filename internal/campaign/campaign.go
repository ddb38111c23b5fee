// Package campaign holds the static campaign configuration: week windows,
// questions, ordered vote options with keyword sets, the goal amount and the
// chart palette. A Campaign is loaded once at process start, validated, and
// passed by value into the core functions; nothing in this package mutates it
// afterwards.
package campaign

import (
	"fmt"
	"strings"
	"time"
)

// VoteOption is one of the mutually exclusive choices for a week. The order
// of options within a window is significant: classification is
// first-match-wins over this order.
type VoteOption struct {
	Name     string   `koanf:"name"`
	Keywords []string `koanf:"keywords"`
}

// WeekWindow is a non-overlapping inclusive date range associated with one
// campaign week. Dates are zero-padded ISO strings (YYYY-MM-DD) so that
// lexicographic comparison equals calendar comparison.
type WeekWindow struct {
	Ordinal  int          `koanf:"ordinal"`
	Label    string       `koanf:"label"`
	Question string       `koanf:"question"`
	Start    string       `koanf:"start"`
	End      string       `koanf:"end"`
	Options  []VoteOption `koanf:"options"`
}

// Campaign is the full immutable configuration for one fundraising run.
type Campaign struct {
	Name       string       `koanf:"name"`
	GoalAmount int64        `koanf:"goal_amount"`
	Palette    []string     `koanf:"palette"`
	Weeks      []WeekWindow `koanf:"weeks"`
}

// Window returns the week window with the given ordinal.
func (c Campaign) Window(ordinal int) (WeekWindow, bool) {
	for _, w := range c.Weeks {
		if w.Ordinal == ordinal {
			return w, true
		}
	}
	return WeekWindow{}, false
}

// Color returns the palette color for an option index, cycling when the
// window has more options than the palette has entries.
func (c Campaign) Color(idx int) string {
	if len(c.Palette) == 0 {
		return ""
	}
	return c.Palette[idx%len(c.Palette)]
}

const isoDate = "2006-01-02"

// Validate checks the configuration and returns an error listing every
// problem found, so operators can fix a campaign file in one pass.
func (c Campaign) Validate() error {
	var errs []string

	if c.GoalAmount <= 0 {
		errs = append(errs, fmt.Sprintf("goal amount must be positive, got %d", c.GoalAmount))
	}
	if len(c.Weeks) == 0 {
		errs = append(errs, "campaign has no week windows")
	}

	seenOrdinals := map[int]bool{}
	for _, w := range c.Weeks {
		prefix := fmt.Sprintf("week %d", w.Ordinal)

		if w.Ordinal < 1 {
			errs = append(errs, fmt.Sprintf("%s: ordinal must be a positive integer", prefix))
		}
		if seenOrdinals[w.Ordinal] {
			errs = append(errs, fmt.Sprintf("%s: duplicate ordinal", prefix))
		}
		seenOrdinals[w.Ordinal] = true

		start, serr := time.Parse(isoDate, w.Start)
		end, eerr := time.Parse(isoDate, w.End)
		if serr != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid start date %q", prefix, w.Start))
		}
		if eerr != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid end date %q", prefix, w.End))
		}
		if serr == nil && eerr == nil && end.Before(start) {
			errs = append(errs, fmt.Sprintf("%s: end date %s before start date %s", prefix, w.End, w.Start))
		}

		if len(w.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no vote options", prefix))
		}
		seenNames := map[string]bool{}
		for _, opt := range w.Options {
			if strings.TrimSpace(opt.Name) == "" {
				errs = append(errs, fmt.Sprintf("%s: vote option with empty name", prefix))
				continue
			}
			if seenNames[opt.Name] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option name %q", prefix, opt.Name))
			}
			seenNames[opt.Name] = true
			if len(opt.Keywords) == 0 {
				errs = append(errs, fmt.Sprintf("%s: option %q has no keywords", prefix, opt.Name))
			}
		}
	}

	// Windows must not overlap. Inclusive ISO ranges overlap exactly when
	// one starts on or before the other's end, both ways.
	for i := 0; i < len(c.Weeks); i++ {
		for j := i + 1; j < len(c.Weeks); j++ {
			a, b := c.Weeks[i], c.Weeks[j]
			if a.Start <= b.End && b.Start <= a.End {
				errs = append(errs, fmt.Sprintf("week %d and week %d windows overlap", a.Ordinal, b.Ordinal))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("campaign validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
