package cmd

import (
	"strings"
	"testing"
)

// TestQuestionsList verifies the grouped listing covers every dimension
func TestQuestionsList(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "questions", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, name := range []string{
		"WORKFLOW MASTERY", "RITUALS & CADENCE", "VISIBILITY & ALIGNMENT",
		"EXECUTION QUALITY", "CONTINUOUS IMPROVEMENT",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing dimension %q", name)
		}
	}
	if !strings.Contains(out, "36 questions across 5 dimensions (embedded source)") {
		t.Errorf("output = %q, want summary line", out)
	}
}

// TestQuestionsShow verifies the single-question view with educational
// content
func TestQuestionsShow(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "questions", "show", "2", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Question 2 (") {
		t.Errorf("output = %q, want question header", out)
	}
	if !strings.Contains(out, "Options:") {
		t.Error("output missing options for a choice question")
	}
	if !strings.Contains(out, "Why this matters:") {
		t.Error("output missing educational content")
	}
	if !strings.Contains(out, "When done well:") {
		t.Error("output missing when-done-well list")
	}
}

// TestQuestionsShowScale verifies scale questions render the rating hint
// instead of options
func TestQuestionsShowScale(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "questions", "show", "1", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Rate from 1") {
		t.Error("output missing scale rating hint")
	}
	if strings.Contains(out, "Options:") {
		t.Error("scale question rendered an option list")
	}
}

// TestQuestionsShowUnknown verifies unknown ids fail
func TestQuestionsShowUnknown(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := execute(t, "questions", "show", "999", "--config", cfg); err == nil {
		t.Error("Execute() error = nil, want unknown id error")
	}
	if _, err := execute(t, "questions", "show", "two", "--config", cfg); err == nil {
		t.Error("Execute() error = nil, want invalid id error")
	}
}
