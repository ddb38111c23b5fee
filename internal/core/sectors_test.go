package core

import (
	"math"
	"testing"
)

func TestBuildSectors(t *testing.T) {
	perOption := []OptionStat{
		{Name: "토끼", Percent: 60.0, Color: "#86A5DC"},
		{Name: "고양이", Percent: 0, Color: "#D5A2A1"},
		{Name: "강아지", Percent: 40.0, Color: "#A6C1EE"},
	}

	sectors := BuildSectors(perOption)
	if len(sectors) != 2 {
		t.Fatalf("len(sectors) = %d, want 2 (zero-percent option skipped)", len(sectors))
	}

	first := sectors[0]
	if first.StartTurn != 0 || first.EndTurn != 0.6 {
		t.Fatalf("first sector turns = [%v, %v], want [0, 0.6]", first.StartTurn, first.EndTurn)
	}
	if first.MidAngleTurn != 0.3 {
		t.Fatalf("first sector mid = %v, want 0.3", first.MidAngleTurn)
	}

	second := sectors[1]
	if second.StartTurn != 0.6 {
		t.Fatalf("second sector starts at %v, want 0.6 (contiguous)", second.StartTurn)
	}
}

func TestBuildSectorsCoverage(t *testing.T) {
	// Percentages already carry one-decimal rounding error; sector turns
	// must sum to one full turn within that tolerance.
	perOption := []OptionStat{
		{Name: "a", Percent: 33.3},
		{Name: "b", Percent: 33.3},
		{Name: "c", Percent: 33.3},
	}
	var covered float64
	for _, s := range BuildSectors(perOption) {
		covered += s.EndTurn - s.StartTurn
	}
	if math.Abs(covered-1.0) > 0.005 {
		t.Fatalf("sector coverage = %v turns, want 1 within rounding tolerance", covered)
	}
}

func TestBuildSectorsLabelThreshold(t *testing.T) {
	sectors := BuildSectors([]OptionStat{
		{Name: "big", Percent: 94.0},
		{Name: "edge", Percent: 5.0},
		{Name: "tiny", Percent: 1.0},
	})
	if !sectors[0].ShowLabel {
		t.Errorf("94%% sector should show its label")
	}
	if sectors[1].ShowLabel {
		t.Errorf("exactly 5%% sector should not show a label (threshold is strict)")
	}
	if sectors[2].ShowLabel {
		t.Errorf("1%% sector should not show a label")
	}
}

func TestBuildSectorsEmpty(t *testing.T) {
	if got := BuildSectors(nil); len(got) != 0 {
		t.Fatalf("expected no sectors, got %d", len(got))
	}
}
