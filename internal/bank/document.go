package bank

import (
	"context"
	"fmt"
	"sort"

	"github.com/harrison/podassess/internal/models"
)

// DocumentFetcher reads the latest question-bank document from the shared
// store. Implemented by the remote store client; kept as an interface so
// the loader stays independent of transport details.
type DocumentFetcher interface {
	FetchLatest(ctx context.Context) (*models.Document, error)
}

// dimensionCount is the number of dimensions a valid store document
// carries for this questionnaire.
const dimensionCount = 5

// ValidateDocument checks the semantic shape of a store document before
// it is trusted as a question bank: required sections present, the
// expected dimension count, the question count matching config, every
// question well formed, and every dimension owning at least one question.
func ValidateDocument(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("document is empty")
	}
	if doc.Config.TotalQuestions == 0 || doc.Config.Version == "" {
		return fmt.Errorf("invalid config section")
	}
	if len(doc.Dimensions) != dimensionCount {
		return fmt.Errorf("expected %d dimensions, got %d", dimensionCount, len(doc.Dimensions))
	}
	if len(doc.Questions) != doc.Config.TotalQuestions {
		return fmt.Errorf("question count mismatch: config says %d, document has %d",
			doc.Config.TotalQuestions, len(doc.Questions))
	}
	if len(doc.ScoreGuide) == 0 {
		return fmt.Errorf("missing score guide")
	}

	perDimension := make(map[string]int, len(doc.Dimensions))
	for _, q := range doc.Questions {
		if err := validateDocumentQuestion(q); err != nil {
			return err
		}
		perDimension[q.DimensionID]++
	}
	for _, d := range doc.Dimensions {
		if perDimension[d.ID] == 0 {
			return fmt.Errorf("dimension %q has no questions", d.ID)
		}
	}
	return nil
}

func validateDocumentQuestion(q models.Question) error {
	if q.ID <= 0 || q.Text == "" || q.DimensionID == "" {
		return fmt.Errorf("question %d: missing required fields", q.ID)
	}
	if _, err := models.ParseQuestionType(string(q.Type)); err != nil {
		return fmt.Errorf("question %d: %w", q.ID, err)
	}
	if q.Type.HasOptions() && len(q.Options) == 0 {
		return fmt.Errorf("question %d: type %s requires options", q.ID, q.Type)
	}
	return nil
}

// FromDocument converts a validated store document into a Bank, warning
// on incomplete educational content the same way the CSV path does.
func FromDocument(doc *models.Document) *Bank {
	b := &Bank{
		Dimensions: append([]models.Dimension(nil), doc.Dimensions...),
		Questions:  append([]models.Question(nil), doc.Questions...),
		ScoreGuide: doc.ScoreGuide,
	}
	if len(b.ScoreGuide) == 0 {
		b.ScoreGuide = models.DefaultScoreGuide()
	}

	// Same ordering contract as the CSV path: dimension source order,
	// ascending id within a dimension.
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

	for _, q := range b.Questions {
		if !q.Why.Complete() {
			b.warnf("question %d: educational content incomplete", q.ID)
		}
	}
	return b
}

// BuildDocument assembles a store document from a Model, carrying the
// provided config section. Questions are emitted in canonical order.
func BuildDocument(m *Model, cfg models.DocumentConfig) *models.Document {
	cfg.TotalQuestions = m.TotalQuestions()
	doc := &models.Document{
		Config:     cfg,
		Dimensions: append([]models.Dimension(nil), m.Dimensions...),
		ScoreGuide: m.ScoreGuide,
	}
	for _, q := range m.Questions {
		doc.Questions = append(doc.Questions, q.Question)
	}
	return doc
}
