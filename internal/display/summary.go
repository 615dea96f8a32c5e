package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// RenderResults writes the full assessment summary: header, overall
// score with its level name, one bar per dimension, and the focus areas
// in priority order.
func RenderResults(out io.Writer, podName, quarter string, m *bank.Model, res scoring.Result, areas []models.FocusArea) {
	useColor := IsTerminal(out)
	bold := func(s string) string {
		if useColor {
			return color.New(color.Bold).Sprint(s)
		}
		return s
	}

	fmt.Fprintf(out, "%s\n", bold("=== Pod Delivery Assessment Results ==="))
	fmt.Fprintf(out, "Pod: %s    Quarter: %s\n\n", podName, quarter)

	fmt.Fprintf(out, "Overall score: %s  %.1f/6 (%s)\n\n",
		ScoreBar(res.Overall, useColor), res.Overall, m.ScoreGuide.LevelForAverage(res.Overall))

	nameWidth := 0
	for _, dim := range m.Dimensions {
		if len(dim.Name) > nameWidth {
			nameWidth = len(dim.Name)
		}
	}
	for _, dim := range m.Dimensions {
		score := res.Dimensions[dim.ID]
		fmt.Fprintf(out, "%-*s %s %.1f (%d/%d answered)\n",
			nameWidth, dim.Name, ScoreBar(score.Average, useColor), score.Average,
			score.Count, len(m.QuestionsIn(dim.ID)))
	}
	fmt.Fprintln(out)

	if len(areas) == 0 {
		fmt.Fprintln(out, "No focus areas generated.")
		return
	}

	fmt.Fprintf(out, "%s\n", bold("Main focus areas for next period:"))
	for _, area := range areas {
		fmt.Fprintf(out, "\n[%s] %s\n", priorityLabel(area.Priority, useColor), area.Title)
		fmt.Fprintf(out, "    %s\n", area.Description)
		for _, rec := range area.Recommendations {
			fmt.Fprintf(out, "    - %s\n", rec)
		}
	}
}

// priorityLabel colors a priority tag for terminal output.
func priorityLabel(p models.Priority, useColor bool) string {
	if !useColor {
		return string(p)
	}
	switch p {
	case models.PriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(string(p))
	case models.PriorityHigh:
		return color.New(color.FgYellow).Sprint(string(p))
	case models.PriorityMedium:
		return color.New(color.FgCyan).Sprint(string(p))
	case models.PriorityOptimize:
		return color.New(color.FgGreen).Sprint(string(p))
	default:
		return string(p)
	}
}
