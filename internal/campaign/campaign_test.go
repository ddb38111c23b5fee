package campaign

import (
	"strings"
	"testing"
)

func validCampaign() Campaign {
	return Campaign{
		Name:       "test",
		GoalAmount: 1000000,
		Palette:    []string{"#111111", "#222222"},
		Weeks: []WeekWindow{
			{
				Ordinal: 1, Label: "1주차", Start: "2026-02-13", End: "2026-02-19",
				Options: []VoteOption{{Name: "토끼", Keywords: []string{"토끼"}}},
			},
			{
				Ordinal: 2, Label: "2주차", Start: "2026-02-20", End: "2026-02-26",
				Options: []VoteOption{{Name: "온둡", Keywords: []string{"온둡"}}},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validCampaign().Validate(); err != nil {
		t.Fatalf("expected valid campaign, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Campaign)
		want   string
	}{
		{"zero goal", func(c *Campaign) { c.GoalAmount = 0 }, "goal amount"},
		{"no weeks", func(c *Campaign) { c.Weeks = nil }, "no week windows"},
		{"duplicate ordinal", func(c *Campaign) { c.Weeks[1].Ordinal = 1 }, "duplicate ordinal"},
		{"zero ordinal", func(c *Campaign) { c.Weeks[0].Ordinal = 0 }, "positive integer"},
		{"bad start date", func(c *Campaign) { c.Weeks[0].Start = "02/13/2026" }, "invalid start date"},
		{"end before start", func(c *Campaign) { c.Weeks[0].End = "2026-02-01" }, "before start date"},
		{"overlap", func(c *Campaign) { c.Weeks[1].Start = "2026-02-19" }, "overlap"},
		{"no options", func(c *Campaign) { c.Weeks[0].Options = nil }, "no vote options"},
		{"duplicate option", func(c *Campaign) {
			c.Weeks[0].Options = append(c.Weeks[0].Options, VoteOption{Name: "토끼", Keywords: []string{"x"}})
		}, "duplicate option name"},
		{"no keywords", func(c *Campaign) { c.Weeks[0].Options[0].Keywords = nil }, "no keywords"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCampaign()
			tc.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	c := validCampaign()
	if w, ok := c.Window(2); !ok || w.Label != "2주차" {
		t.Fatalf("Window(2) = %+v, %v", w, ok)
	}
	if _, ok := c.Window(0); ok {
		t.Fatalf("Window(0) should not exist")
	}
}

func TestColorCycles(t *testing.T) {
	c := validCampaign()
	if c.Color(0) != "#111111" || c.Color(2) != "#111111" || c.Color(3) != "#222222" {
		t.Fatalf("palette cycling broken: %s %s %s", c.Color(0), c.Color(2), c.Color(3))
	}
	if (Campaign{}).Color(0) != "" {
		t.Fatalf("empty palette should yield empty color")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded default: %v", err)
	}
	if c.GoalAmount != 10000000 {
		t.Fatalf("GoalAmount = %d, want 10000000", c.GoalAmount)
	}
	if len(c.Weeks) != 4 {
		t.Fatalf("len(Weeks) = %d, want 4", len(c.Weeks))
	}
	w3, ok := c.Window(3)
	if !ok || w3.Start != "2026-02-27" || w3.End != "2026-03-05" {
		t.Fatalf("week 3 window = %+v, %v", w3, ok)
	}
}
