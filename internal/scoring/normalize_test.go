package scoring

import (
	"testing"

	"github.com/harrison/podassess/internal/models"
)

var scaleQuestion = models.Question{
	ID:   1,
	Text: "rate it",
	Type: models.TypeScale,
}

var choiceQuestion = models.Question{
	ID:   2,
	Text: "pick one",
	Type: models.TypeMaturity,
	Options: []models.Option{
		{Label: "Never", Value: 1},
		{Label: "Sometimes", Value: 3},
		{Label: "Always", Value: 6},
	},
}

// TestNormalizeScale verifies integer parsing and range checking for
// scale answers
func TestNormalizeScale(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"1", models.ScoreValue(1)},
		{"6", models.ScoreValue(6)},
		{"4", models.ScoreValue(4)},
		{"0", nil},
		{"7", nil},
		{"-3", nil},
		{"3.5", nil},
		{"six", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := Normalize(scaleQuestion, tt.raw)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("Normalize(scale, %q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("Normalize(scale, %q) = %d, want %d", tt.raw, *got, *tt.want)
		}
	}
}

// TestNormalizeChoice verifies exact label matching for option questions
func TestNormalizeChoice(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"Never", models.ScoreValue(1)},
		{"Always", models.ScoreValue(6)},
		{"always", nil},
		{"Always ", nil},
		{"Weekly", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := Normalize(choiceQuestion, tt.raw)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("Normalize(choice, %q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("Normalize(choice, %q) = %d, want %d", tt.raw, *got, *tt.want)
		}
	}
}

// TestAnswerKeepsRaw verifies the answer record preserves the raw
// response even when it fails to normalize
func TestAnswerKeepsRaw(t *testing.T) {
	a := Answer(choiceQuestion, "Weekly")
	if a.Raw != "Weekly" {
		t.Errorf("Raw = %q, want %q", a.Raw, "Weekly")
	}
	if a.Score != nil {
		t.Errorf("Score = %v, want nil", a.Score)
	}
	if a.Type != models.TypeMaturity {
		t.Errorf("Type = %v, want %v", a.Type, models.TypeMaturity)
	}
	if a.Answered() {
		t.Error("Answered() = true, want false for nil score")
	}
}
