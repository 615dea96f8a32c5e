package bank

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/harrison/podassess/internal/models"
)

// maxOptions is the number of option label/value column pairs in the
// tabular format (option_1_label .. option_6_value).
const maxOptions = 6

// ErrEmptySource indicates the tabular source had no header row at all.
var ErrEmptySource = errors.New("bank: source contains no rows")

// Bank is a parsed question bank before flattening: dimensions in first
// occurrence order, questions sorted by ascending id within each
// dimension, plus the fixed score guide and any parse warnings.
type Bank struct {
	Dimensions []models.Dimension
	Questions  []models.Question
	ScoreGuide models.ScoreGuide
	Warnings   []string
}

// QuestionsFor returns the questions belonging to the given dimension,
// in ascending id order.
func (b *Bank) QuestionsFor(dimensionID string) []models.Question {
	var out []models.Question
	for _, q := range b.Questions {
		if q.DimensionID == dimensionID {
			out = append(out, q)
		}
	}
	return out
}

// Parse parses tabular question-bank text into a Bank.
//
// The first record is the header row; data rows missing any of the
// mandatory fields (dimension id, question id, question text, question
// type) are skipped with a warning rather than aborting the parse. The
// first occurrence of a dimension id wins for its name and description.
// Option pairs are collected for quantity/maturity questions only, and a
// pair counts only when both label and value are present.
func Parse(text string) (*Bank, error) {
	records := splitRecords(text)
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}

	b := &Bank{ScoreGuide: models.DefaultScoreGuide()}
	seen := make(map[string]bool)

	for rowNum, rec := range records[1:] {
		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		dimID := field("dimension_id")
		idText := field("question_id")
		text := field("question_text")
		typeText := field("question_type")
		if dimID == "" || idText == "" || text == "" || typeText == "" {
			b.warnf("row %d: missing mandatory fields, skipped", rowNum+2)
			continue
		}

		id, err := strconv.Atoi(idText)
		if err != nil || id <= 0 {
			b.warnf("row %d: invalid question id %q, skipped", rowNum+2, idText)
			continue
		}

		qType, err := models.ParseQuestionType(typeText)
		if err != nil {
			b.warnf("row %d: %v, skipped", rowNum+2, err)
			continue
		}

		if !seen[dimID] {
			seen[dimID] = true
			b.Dimensions = append(b.Dimensions, models.Dimension{
				ID:          dimID,
				Name:        field("dimension_name"),
				Description: field("dimension_description"),
			})
		}

		q := models.Question{
			ID:          id,
			DimensionID: dimID,
			Text:        text,
			Type:        qType,
			Why: models.WhyContent{
				WhyMatters:      field("why_matters"),
				WhenDoneWell:    splitMultiValue(field("when_done_well")),
				ProblemsWithout: splitMultiValue(field("problems_without")),
			},
		}

		if qType.HasOptions() {
			for i := 1; i <= maxOptions; i++ {
				label := field(fmt.Sprintf("option_%d_label", i))
				valueText := field(fmt.Sprintf("option_%d_value", i))
				if label == "" || valueText == "" {
					continue
				}
				value, err := strconv.Atoi(valueText)
				if err != nil {
					b.warnf("question %d: option %d has non-numeric value %q, ignored", id, i, valueText)
					continue
				}
				q.Options = append(q.Options, models.Option{Label: label, Value: value})
			}
			if len(q.Options) == 0 {
				b.warnf("question %d: type %s requires options but none were found", id, qType)
			}
			if dup := duplicateOptionValue(q.Options); dup != 0 {
				b.warnf("question %d: duplicate option value %d", id, dup)
			}
		}

		if !q.Why.Complete() {
			b.warnf("question %d: educational content incomplete", id)
		}

		b.Questions = append(b.Questions, q)
	}

	// Order questions by dimension source order first, then ascending id
	// within each dimension.
	dimOrder := make(map[string]int, len(b.Dimensions))
	for i, d := range b.Dimensions {
		dimOrder[d.ID] = i
	}
	sort.SliceStable(b.Questions, func(i, j int) bool {
		qi, qj := b.Questions[i], b.Questions[j]
		if qi.DimensionID != qj.DimensionID {
			return dimOrder[qi.DimensionID] < dimOrder[qj.DimensionID]
		}
		return qi.ID < qj.ID
	})

	return b, nil
}

// duplicateOptionValue returns the first value appearing more than once
// in the option list, or 0 when all values are distinct. Duplicates are
// accepted (each value conventionally marks a distinct quality level, but
// the format does not enforce it) and surfaced as a warning only.
func duplicateOptionValue(options []models.Option) int {
	seen := make(map[int]bool, len(options))
	for _, o := range options {
		if seen[o.Value] {
			return o.Value
		}
		seen[o.Value] = true
	}
	return 0
}

func (b *Bank) warnf(format string, args ...any) {
	b.Warnings = append(b.Warnings, fmt.Sprintf(format, args...))
}
