// Package core implements the classification and aggregation engine for the
// campaign: period resolution, vote classification, per-week statistics,
// pie-sector geometry and countdown state. Every function here is a pure,
// synchronous computation over immutable inputs; the campaign configuration
// is always passed in explicitly.
package core

import (
	"strconv"
	"unicode"
)

// ParseAmount converts a digits-only amount string to whole currency units.
//
// The form boundary is responsible for stripping grouping characters before
// calling this; ParseAmount rejects anything that is not a plain run of
// ASCII digits. An empty or symbol-only input is an error rather than a
// silently corrupting value, so a bad submission can never poison the sums
// downstream.
func ParseAmount(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Only overflow can get here after the digit scan.
		return 0, ErrInvalidAmount
	}
	return v, nil
}
