package core

// labelThreshold is the percent above which a sector is wide enough to hold
// a rendered label.
const labelThreshold = 5.0

// Sector is an angular slice of a circular chart. All angles are fractions
// of one full turn in [0, 1]; converting to degrees, radians, arc flags or
// path commands is a rendering concern.
type Sector struct {
	OptionName   string
	StartTurn    float64
	EndTurn      float64
	MidAngleTurn float64
	Color        string
	ShowLabel    bool
}

// BuildSectors converts a percentage distribution into sector descriptors,
// walking perOption in order and accumulating the turn fraction. Options
// with a zero percent are skipped; when ValidTotal was positive the emitted
// sectors cover one full turn up to the rounding error of the one-decimal
// percentages.
func BuildSectors(perOption []OptionStat) []Sector {
	sectors := make([]Sector, 0, len(perOption))
	acc := 0.0
	for _, opt := range perOption {
		if opt.Percent <= 0 {
			continue
		}
		start := acc
		end := acc + opt.Percent/100
		sectors = append(sectors, Sector{
			OptionName:   opt.Name,
			StartTurn:    start,
			EndTurn:      end,
			MidAngleTurn: (start + end) / 2,
			Color:        opt.Color,
			ShowLabel:    opt.Percent > labelThreshold,
		})
		acc = end
	}
	return sectors
}
