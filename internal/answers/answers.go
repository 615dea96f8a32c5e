// Package answers reads responses for an assessment run from a YAML
// file: a mapping of question id to raw answer (an integer rating for
// scale questions, an option label for choice questions), plus optional
// run metadata.
package answers

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// File is the parsed answers document.
type File struct {
	Pod     string      `yaml:"pod"`
	Quarter string      `yaml:"quarter"`
	Answers map[int]any `yaml:"answers"`
}

// Load reads and parses an answers YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	if len(f.Answers) == 0 {
		return nil, fmt.Errorf("answers file %s contains no answers", path)
	}
	return &f, nil
}

// Resolve normalizes the raw answers against the question model,
// producing the answer set consumed by scoring. Unknown question ids are
// skipped and reported as warnings; answers that do not resolve to a
// score stay in the set with a nil score so exports can show the raw
// response.
func (f *File) Resolve(m *bank.Model) (models.AnswerSet, []string) {
	set := make(models.AnswerSet, len(f.Answers))
	var warnings []string

	for id, raw := range f.Answers {
		q, ok := m.QuestionByID(id)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("answer for unknown question %d ignored", id))
			continue
		}
		a := scoring.Answer(q.Question, rawText(raw))
		if a.Score == nil {
			warnings = append(warnings, fmt.Sprintf("question %d: answer %q does not resolve to a score", id, a.Raw))
		}
		set[id] = a
	}
	return set, warnings
}

// rawText renders a YAML answer value as its raw wire text.
func rawText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		// YAML hands over whole numbers as ints; a float here is a
		// malformed rating and will fail normalization downstream.
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
