package models

// DimensionScore is the derived score for one dimension. Average is the
// mean of the normalized scores of exactly the answered questions in the
// dimension; a dimension with no answered questions has Average 0 and
// Count 0. Recomputed in full on every calculation, never patched.
type DimensionScore struct {
	Average float64
	Total   int
	Count   int
	Name    string
}

// Priority ranks a focus area. The generated ordering is always
// CRITICAL, HIGH, MEDIUM, then OPTIMIZE, and OPTIMIZE never co-occurs
// with the others.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityOptimize Priority = "OPTIMIZE"
)

// FocusArea is one generated improvement recommendation block. Purely
// derived and presentation-oriented; recomputed each time.
type FocusArea struct {
	Priority        Priority
	Title           string
	Description     string
	Recommendations []string
}
