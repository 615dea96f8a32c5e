package models

import "testing"

// TestDefaultScoreGuide verifies the fixed six-level table
func TestDefaultScoreGuide(t *testing.T) {
	g := DefaultScoreGuide()

	if len(g) != 6 {
		t.Fatalf("len(guide) = %d, want 6", len(g))
	}
	if g[6].Level != "Mastered" {
		t.Errorf("guide[6].Level = %q, want Mastered", g[6].Level)
	}
	if g[1].Level != "Not Present" {
		t.Errorf("guide[1].Level = %q, want Not Present", g[1].Level)
	}
	for score := 1; score <= 6; score++ {
		level := g[score]
		if level.Level == "" || level.Description == "" || level.Meaning == "" {
			t.Errorf("guide[%d] has empty fields: %+v", score, level)
		}
	}
}

// TestLevelForAverage verifies the half-point boundaries
func TestLevelForAverage(t *testing.T) {
	g := DefaultScoreGuide()

	tests := []struct {
		avg  float64
		want string
	}{
		{6.0, "Mastered"},
		{5.5, "Mastered"},
		{5.49, "Proficient"},
		{4.5, "Proficient"},
		{4.49, "Capable"},
		{3.5, "Capable"},
		{3.49, "Developing"},
		{2.5, "Developing"},
		{2.49, "Struggling"},
		{1.5, "Struggling"},
		{1.49, "Not Present"},
		{0, "Not Present"},
	}

	for _, tt := range tests {
		if got := g.LevelForAverage(tt.avg); got != tt.want {
			t.Errorf("LevelForAverage(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
