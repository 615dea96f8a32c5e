// Package export renders computed assessment results into portable
// formats: a spreadsheet-style CSV report and a standalone HTML document
// with an embedded dimension chart. Display rounding happens here and
// only here; stored scores are never rounded.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// Meta identifies the assessment run a report describes.
type Meta struct {
	PodName string
	Quarter string
	Date    time.Time
}

// noResponse is the placeholder written for unanswered questions.
const noResponse = "No Response"

// BuildCSV renders the full results spreadsheet: a header block, the
// focus areas, per-dimension scores, and one row per question with the
// raw and normalized response. Section layout is stable; downstream
// tooling parses it positionally.
func BuildCSV(meta Meta, m *bank.Model, res scoring.Result, areas []models.FocusArea, answers models.AnswerSet) string {
	var b strings.Builder

	b.WriteString("Pod Assessment Results\n\n")
	fmt.Fprintf(&b, "Pod Name,%s\n", csvField(meta.PodName))
	fmt.Fprintf(&b, "Quarter,%s\n", csvField(meta.Quarter))
	fmt.Fprintf(&b, "Overall Score,%.2f\n", res.Overall)
	fmt.Fprintf(&b, "Assessment Date,%s\n\n", meta.Date.Format("02/01/2006"))

	if len(areas) > 0 {
		b.WriteString("Main Focus Areas for Next Period\n")
		b.WriteString("Priority,Title,Description,Recommended Actions\n")
		for _, area := range areas {
			actions := strings.Join(area.Recommendations, "; ")
			fmt.Fprintf(&b, "%s,%s,%s,%s\n",
				quoted(string(area.Priority)), quoted(area.Title),
				quoted(area.Description), quoted(actions))
		}
		b.WriteString("\n")
	}

	b.WriteString("Dimension Scores\n")
	b.WriteString("Dimension,Average Score,Total Points,Questions Count\n")
	for _, dim := range m.Dimensions {
		score := res.Dimensions[dim.ID]
		fmt.Fprintf(&b, "%s,%.2f,%d,%d\n", quoted(dim.Name), score.Average, score.Total, score.Count)
	}

	b.WriteString("\nDetailed Responses\n")
	b.WriteString("Question ID,Dimension,Question,Raw Response,Normalized Score\n")
	for _, q := range m.Questions {
		a, ok := answers[q.ID]
		if !ok {
			fmt.Fprintf(&b, "%d,%s,%s,%s,%s\n",
				q.ID, quoted(q.DimensionName), quoted(q.Text), quoted(noResponse), quoted(noResponse))
			continue
		}
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s\n",
			q.ID, quoted(q.DimensionName), quoted(q.Text), quoted(a.Raw), scoreField(a.Score))
	}

	return b.String()
}

// scoreField formats a normalized score cell; nil renders as the
// unanswered placeholder.
func scoreField(score *int) string {
	if score == nil {
		return quoted(noResponse)
	}
	return fmt.Sprintf("%d", *score)
}

// quoted wraps a field in double quotes, escaping embedded quotes by
// doubling them.
func quoted(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// csvField quotes a field only when it needs it.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return quoted(s)
	}
	return s
}
