package model

import "strconv"

// NoDataPlaceholder is rendered when a summary field has no backing value
const NoDataPlaceholder = "-"

// Summary holds the display metrics derived from the active series,
// consumed by the info-panel collaborator
type Summary struct {
	LatestValue string `json:"latestValue"`
	LatestLabel string `json:"latestLabel"`
	Diff        string `json:"diff"`
	Unit        string `json:"unit"`
}

// EmptySummary returns the placeholder summary for a series without data
func EmptySummary() Summary {
	return Summary{
		LatestValue: NoDataPlaceholder,
		LatestLabel: NoDataPlaceholder,
		Diff:        NoDataPlaceholder,
		Unit:        "",
	}
}

// FormatValue renders a dataset value; nil renders as the placeholder
func FormatValue(v *float64) string {
	if v == nil {
		return NoDataPlaceholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatSignedDifference renders a period-over-period difference with an
// explicit leading sign for zero and positive values ("+0", "+5", "-3")
func FormatSignedDifference(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v >= 0 {
		return "+" + s
	}
	return s
}
