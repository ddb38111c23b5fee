package core

import "fmt"

// FormatWeek renders a week ordinal for exports: "N주차", or "범위외" for
// contributions dated outside every window.
func FormatWeek(ordinal int) string {
	if ordinal == WeekOutOfRange {
		return "범위외"
	}
	return fmt.Sprintf("%d주차", ordinal)
}
