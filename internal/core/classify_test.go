package core

import (
	"testing"

	"gongu/internal/campaign"
)

// twoOptionCampaign builds a single-week campaign where both options can
// match the same label, to pin down match ordering.
func twoOptionCampaign() campaign.Campaign {
	return campaign.Campaign{
		GoalAmount: 10000000,
		Palette:    []string{"#86A5DC", "#D5A2A1"},
		Weeks: []campaign.WeekWindow{
			{
				Ordinal: 1,
				Label:   "1주차",
				Start:   "2026-02-13",
				End:     "2026-02-19",
				Options: []campaign.VoteOption{
					{Name: "토끼", Keywords: []string{"토끼"}},
					{Name: "고양이", Keywords: []string{"고양이", "냥"}},
				},
			},
		},
	}
}

func TestClassifyVote(t *testing.T) {
	camp := twoOptionCampaign()

	cases := []struct {
		week  int
		label string
		want  string
	}{
		{1, "이진기토끼", "토끼"},
		{1, "김냥이", "고양이"},
		{1, "후원합니다", VoteInvalid},
		{0, "이진기토끼", VoteOutOfRange}, // no keyword matching for week 0
		{9, "이진기토끼", VoteOutOfRange}, // unconfigured ordinal
	}
	for i, tc := range cases {
		if got := ClassifyVote(tc.week, tc.label, camp); got != tc.want {
			t.Errorf("case %d: ClassifyVote(%d, %q) = %q, want %q", i, tc.week, tc.label, got, tc.want)
		}
	}
}

func TestClassifyVoteFirstMatchWins(t *testing.T) {
	// A label containing keywords of both options resolves to the option
	// configured first, regardless of which match is more specific.
	camp := twoOptionCampaign()
	if got := ClassifyVote(1, "고양이보다토끼", camp); got != "토끼" {
		t.Fatalf("ClassifyVote = %q, want first configured option 토끼", got)
	}
}

func TestClassifyVoteCaseSensitive(t *testing.T) {
	camp := campaign.Default()
	// Week 4 keywords include "TOUGH"; the lowercase form must not match.
	if got := ClassifyVote(4, "tough한사람", camp); got != VoteInvalid {
		t.Fatalf("ClassifyVote = %q, want %q (matching is case-sensitive)", got, VoteInvalid)
	}
	if got := ClassifyVote(4, "TOUGH러버", camp); got != "TOUGH LOVE" {
		t.Fatalf("ClassifyVote = %q, want TOUGH LOVE", got)
	}
}

func TestRestamp(t *testing.T) {
	camp := twoOptionCampaign()
	c := Contribution{
		Channel:    ChannelBankTransfer,
		Date:       "2026-02-14",
		Time:       "09:00:00",
		PayerLabel: "이진기토끼",
		Amount:     Money{Units: 10000},
		// Stale values that must be overwritten.
		WeekOrdinal: 99,
		VoteOption:  "고양이",
	}
	got := Restamp(c, camp)
	if got.WeekOrdinal != 1 || got.VoteOption != "토끼" {
		t.Fatalf("Restamp = week %d option %q, want week 1 option 토끼", got.WeekOrdinal, got.VoteOption)
	}

	got = Restamp(Contribution{Date: "2026-01-01", PayerLabel: "이진기토끼"}, camp)
	if got.WeekOrdinal != WeekOutOfRange || got.VoteOption != VoteOutOfRange {
		t.Fatalf("Restamp out-of-range = week %d option %q", got.WeekOrdinal, got.VoteOption)
	}
}
