package bank

import (
	"errors"
	"fmt"

	"github.com/harrison/podassess/internal/models"
)

// ExpectedQuestionCount is the question count this questionnaire version
// ships with. A loaded bank with a different count works, but the
// mismatch is surfaced as a warning.
const ExpectedQuestionCount = 36

// ErrNoQuestions is the only hard load failure: a bank that produced zero
// questions cannot drive an assessment.
var ErrNoQuestions = errors.New("bank: no questions loaded")

// Model is the validated, immutable in-memory question model every
// downstream component consumes. Questions holds the flattened canonical
// sequence; its order defines presentation order, progress and export
// layout. Construct one with Flatten and pass it by reference; nothing
// mutates it after construction.
type Model struct {
	Dimensions []models.Dimension
	Questions  []models.FlatQuestion
	ScoreGuide models.ScoreGuide
	Warnings   []string
}

// TotalQuestions returns the length of the canonical sequence.
func (m *Model) TotalQuestions() int {
	return len(m.Questions)
}

// QuestionsIn returns the flattened questions of one dimension, in
// canonical order.
func (m *Model) QuestionsIn(dimensionID string) []models.FlatQuestion {
	var out []models.FlatQuestion
	for _, q := range m.Questions {
		if q.DimensionID == dimensionID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks a question up by its raw id. The canonical sequence
// is the traversal order; this is only for answer resolution and display.
func (m *Model) QuestionByID(id int) (models.FlatQuestion, bool) {
	for _, q := range m.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.FlatQuestion{}, false
}

// Flatten converts a parsed Bank into the canonical Model: for each
// dimension in source order, for each of its questions in id order, emit
// a denormalized record with dimension context and sequence positions.
//
// A total differing from ExpectedQuestionCount is a warning; zero
// questions is ErrNoQuestions, the single hard failure of the load path.
func Flatten(b *Bank) (*Model, error) {
	m := &Model{
		Dimensions: b.Dimensions,
		ScoreGuide: b.ScoreGuide,
		Warnings:   append([]string(nil), b.Warnings...),
	}

	global := 0
	for dimIdx, dim := range b.Dimensions {
		questions := b.QuestionsFor(dim.ID)
		for pos, q := range questions {
			m.Questions = append(m.Questions, models.FlatQuestion{
				Question:            q,
				DimensionIndex:      dimIdx,
				DimensionName:       dim.Name,
				PositionInDimension: pos + 1,
				TotalInDimension:    len(questions),
				GlobalIndex:         global,
			})
			global++
		}
	}

	if len(m.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(m.Questions) != ExpectedQuestionCount {
		m.Warnings = append(m.Warnings, fmt.Sprintf(
			"expected %d questions, loaded %d", ExpectedQuestionCount, len(m.Questions)))
	}

	return m, nil
}
