package export

import (
	"fmt"
	"strings"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// BuildMarkdown renders the document-form report as markdown: overview,
// dimension score table with level names from the score guide, the score
// guide itself, focus areas, and detailed responses grouped by dimension.
func BuildMarkdown(meta Meta, m *bank.Model, res scoring.Result, areas []models.FocusArea, answers models.AnswerSet) string {
	var b strings.Builder

	b.WriteString("# Pod Delivery Assessment Report\n\n")
	fmt.Fprintf(&b, "**%s** | %s | %s\n\n", meta.PodName, meta.Quarter, meta.Date.Format("02/01/2006"))
	fmt.Fprintf(&b, "## Overall Score: %.1f / 6\n\n", res.Overall)
	fmt.Fprintf(&b, "Level: **%s**\n\n", m.ScoreGuide.LevelForAverage(res.Overall))

	b.WriteString("## Dimension Scores\n\n")
	b.WriteString("| Dimension | Score | Level | Answered |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, dim := range m.Dimensions {
		score := res.Dimensions[dim.ID]
		fmt.Fprintf(&b, "| %s | %.1f | %s | %d/%d |\n",
			dim.Name, score.Average, m.ScoreGuide.LevelForAverage(score.Average),
			score.Count, len(m.QuestionsIn(dim.ID)))
	}
	b.WriteString("\n")

	if len(areas) > 0 {
		b.WriteString("## Main Focus Areas for Next Period\n\n")
		for _, area := range areas {
			fmt.Fprintf(&b, "### [%s] %s\n\n", area.Priority, area.Title)
			fmt.Fprintf(&b, "%s\n\n", area.Description)
			for _, rec := range area.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Score Guide\n\n")
	b.WriteString("| Score | Level | Description |\n")
	b.WriteString("|---|---|---|\n")
	for score := scoring.MaxScore; score >= scoring.MinScore; score-- {
		level := m.ScoreGuide[score]
		fmt.Fprintf(&b, "| %d | %s | %s |\n", score, level.Level, level.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Responses by Dimension\n\n")
	for _, dim := range m.Dimensions {
		fmt.Fprintf(&b, "### %s\n\n", dim.Name)
		for _, q := range m.QuestionsIn(dim.ID) {
			a, ok := answers[q.ID]
			switch {
			case !ok:
				fmt.Fprintf(&b, "%d. %s\n   - No response provided\n", q.ID, q.Text)
			case a.Score != nil:
				fmt.Fprintf(&b, "%d. %s\n   - Response: %s (score %d)\n", q.ID, q.Text, a.Raw, *a.Score)
			default:
				fmt.Fprintf(&b, "%d. %s\n   - Response: %s (no score)\n", q.ID, q.Text, a.Raw)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
