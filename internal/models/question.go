// Package models defines the core data types for the pod delivery assessment:
// dimensions, questions, answers, derived scores and the remote store document.
package models

import "fmt"

// QuestionType identifies how a question is answered and scored.
// The wire representation (CSV and remote document) uses the single
// letters A, B and C.
type QuestionType string

const (
	// TypeScale is a direct 1-6 self-rating with no option list (letter "A").
	TypeScale QuestionType = "A"

	// TypeQuantity is a multiple-choice question whose options bucket a
	// measured quantity (demo counts, attendance bands) onto the 1-6
	// scale (letter "B").
	TypeQuantity QuestionType = "B"

	// TypeMaturity is a multiple-choice question whose options describe
	// maturity levels mapped onto the 1-6 scale (letter "C").
	TypeMaturity QuestionType = "C"
)

// ParseQuestionType converts a wire letter into a QuestionType.
// Returns an error for anything other than A, B or C.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case TypeScale, TypeQuantity, TypeMaturity:
		return QuestionType(s), nil
	default:
		return "", fmt.Errorf("invalid question type %q (expected A, B or C)", s)
	}
}

// HasOptions reports whether questions of this type carry an option list.
// Scale questions are answered with a raw 1-6 integer; quantity and
// maturity questions are answered by selecting one of their options.
func (t QuestionType) HasOptions() bool {
	return t == TypeQuantity || t == TypeMaturity
}

// Dimension is one scored category of the assessment (e.g. "WORKFLOW
// MASTERY"). The set of dimensions is fixed for a given questionnaire
// version and is treated as read-only once loaded.
type Dimension struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Option is one selectable answer for a quantity or maturity question.
// Value is the normalized 1-6 score the option contributes.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// WhyContent holds the educational annotations attached to a question.
type WhyContent struct {
	WhyMatters      string   `json:"whyMatters"`
	WhenDoneWell    []string `json:"whenDoneWell"`
	ProblemsWithout []string `json:"problemsWithout"`
}

// Complete reports whether all three content fields are populated.
// Loaders warn (but do not fail) on incomplete content.
func (w WhyContent) Complete() bool {
	return w.WhyMatters != "" && len(w.WhenDoneWell) > 0 && len(w.ProblemsWithout) > 0
}

// Question is one assessment question. Options is nil for scale questions
// and non-empty for quantity and maturity questions.
type Question struct {
	ID          int          `json:"id"`
	DimensionID string       `json:"dimensionId"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Options     []Option     `json:"options,omitempty"`
	Why         WhyContent   `json:"whyContent"`
}

// FindOption returns the option with the given label and whether it exists.
// Matching is exact; labels are unique within a question by convention.
func (q Question) FindOption(label string) (Option, bool) {
	for _, o := range q.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// FlatQuestion is the denormalized form of a question used for traversal:
// the question itself plus its position within the flattened sequence.
// The flattened order (dimensions in source order, questions by ascending
// id within each dimension) is the canonical order for presentation,
// progress and export, never the raw question id.
type FlatQuestion struct {
	Question

	// DimensionIndex is the 0-based position of the owning dimension.
	DimensionIndex int

	// DimensionName is carried along so downstream consumers never need
	// a dimensions lookup.
	DimensionName string

	// PositionInDimension is the 1-based position of this question
	// within its dimension.
	PositionInDimension int

	// TotalInDimension is the number of questions in the owning dimension.
	TotalInDimension int

	// GlobalIndex is the 0-based position in the full flattened sequence.
	GlobalIndex int
}
