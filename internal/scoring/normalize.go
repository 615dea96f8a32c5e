// Package scoring normalizes raw answers onto the 1-6 scale and computes
// per-dimension and overall scores. Everything here is a pure function of
// its inputs: no hidden state, safe to call repeatedly, identical inputs
// give identical outputs.
package scoring

import (
	"strconv"

	"github.com/harrison/podassess/internal/models"
)

// Scale bounds for normalized scores.
const (
	MinScore = 1
	MaxScore = 6
)

// Normalize maps a raw answer to its normalized 1-6 score, or nil when
// the answer does not resolve to a score.
//
// Scale questions take the rating's decimal text; anything that is not an
// integer in [1,6] normalizes to nil rather than passing through
// unchecked. Quantity and maturity questions take the selected option's
// label; an exact match returns that option's value, anything else nil.
// A nil result means "no contribution": it is excluded from every
// downstream average, never counted as zero.
func Normalize(q models.Question, raw string) *int {
	switch q.Type {
	case models.TypeScale:
		v, err := strconv.Atoi(raw)
		if err != nil || v < MinScore || v > MaxScore {
			return nil
		}
		return models.ScoreValue(v)
	case models.TypeQuantity, models.TypeMaturity:
		if o, ok := q.FindOption(raw); ok {
			return models.ScoreValue(o.Value)
		}
		return nil
	default:
		return nil
	}
}

// Answer builds the answer record for a question from its raw response.
func Answer(q models.Question, raw string) models.Answer {
	return models.Answer{
		Raw:   raw,
		Score: Normalize(q, raw),
		Type:  q.Type,
	}
}
