package scoring

import (
	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
)

// Result holds one full scoring pass: per-dimension scores keyed by
// dimension id, and the overall score. Both are recomputed from scratch
// on every call to Score.
type Result struct {
	Dimensions map[string]models.DimensionScore
	Overall    float64
}

// Score computes per-dimension averages and the overall score for the
// given answers against the question model.
//
// A dimension's average covers exactly its answered questions, so a
// partially completed dimension still yields a meaningful average instead
// of being dragged toward zero by unanswered items; a dimension with no
// answers scores 0 with count 0.
//
// The overall score is the population-wide mean of every normalized score
// in the answer set, NOT the mean of the dimension averages. The two
// differ whenever dimensions carry unequal question counts, and this
// distinction is load-bearing for report consumers.
func Score(m *bank.Model, answers models.AnswerSet) Result {
	res := Result{Dimensions: make(map[string]models.DimensionScore, len(m.Dimensions))}

	for _, dim := range m.Dimensions {
		sum, count := 0, 0
		for _, q := range m.QuestionsIn(dim.ID) {
			a, ok := answers[q.ID]
			if !ok || a.Score == nil {
				continue
			}
			sum += *a.Score
			count++
		}

		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		res.Dimensions[dim.ID] = models.DimensionScore{
			Average: avg,
			Total:   sum,
			Count:   count,
			Name:    dim.Name,
		}
	}

	sum, count := 0, 0
	for _, a := range answers {
		if a.Score == nil {
			continue
		}
		sum += *a.Score
		count++
	}
	if count > 0 {
		res.Overall = float64(sum) / float64(count)
	}

	return res
}
