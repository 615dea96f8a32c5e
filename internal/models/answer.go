package models

import "strconv"

// Answer is one recorded response, keyed by question id in an AnswerSet.
// Raw holds the response exactly as given: the decimal text of the rating
// for scale questions, or the selected option label for choice questions.
// Score is the normalized 1-6 value; nil means the response did not
// resolve to a score (unanswered or unrecognized selection) and must be
// excluded from every average rather than treated as zero.
type Answer struct {
	Raw   string
	Score *int
	Type  QuestionType
}

// Answered reports whether the answer carries a usable normalized score.
func (a Answer) Answered() bool {
	return a.Score != nil
}

// AnswerSet maps question id to the latest answer for that question.
// Re-answering a question overwrites its entry; the set is owned by the
// caller and read, never mutated, by the scoring code.
type AnswerSet map[int]Answer

// ScoreValue returns a pointer to v, for building answers in place.
func ScoreValue(v int) *int {
	return &v
}

// RawScale formats a scale rating as its raw wire text.
func RawScale(v int) string {
	return strconv.Itoa(v)
}
