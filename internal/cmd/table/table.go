// Package table converts domain types into tabular data for CLI output.
package table

import "strconv"

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// dash renders an optional string, substituting "-" when unset or empty.
func dash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// formatGoal renders an optional goal value.
func formatGoal(goal *float64) string {
	if goal == nil {
		return "-"
	}
	return strconv.FormatFloat(*goal, 'f', -1, 64)
}

// formatDirection renders the goal direction of a KPI.
func formatDirection(isHigherBetter bool) string {
	if isHigherBetter {
		return "higher"
	}
	return "lower"
}

// truncate shortens long free-text fields for table display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
