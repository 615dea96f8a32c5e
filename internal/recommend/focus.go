package recommend

import (
	"fmt"
	"sort"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// Score thresholds that drive focus-area generation.
const (
	lowScoreCeiling      = 3   // a question at or below this is a low scorer
	criticalScoreCeiling = 2   // ...and at or below this, a critical gap
	highAverageFloor     = 4.0 // worst dimension below this gets a HIGH entry
	mediumAverageFloor   = 4.5 // second-worst below this gets a MEDIUM entry
	optimizeOverallFloor = 4.5 // overall at or above this may earn OPTIMIZE
)

const (
	maxCriticalRecommendations = 3
	maxMediumRecommendations   = 2
	questionTextLimit          = 80
)

// lowScore pairs a low-scoring question with its normalized score.
type lowScore struct {
	question models.FlatQuestion
	score    int
}

// FocusAreas generates the prioritized improvement list for one scoring
// pass. The returned order is the order shown to the user and embedded in
// exports: CRITICAL before HIGH before MEDIUM, with OPTIMIZE only when
// nothing else fired. An empty result is valid output, not an error: it
// means scores are mediocre but nothing crossed a threshold.
func FocusAreas(m *bank.Model, res scoring.Result, answers models.AnswerSet) []models.FocusArea {
	// Dimensions sorted ascending by average, stable on source order.
	sorted := append([]models.Dimension(nil), m.Dimensions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return res.Dimensions[sorted[i].ID].Average < res.Dimensions[sorted[j].ID].Average
	})

	// Low-scoring answered questions, sorted ascending by score, stable
	// on canonical question order.
	var lows []lowScore
	for _, q := range m.Questions {
		a, ok := answers[q.ID]
		if !ok || a.Score == nil || *a.Score > lowScoreCeiling {
			continue
		}
		lows = append(lows, lowScore{question: q, score: *a.Score})
	}
	sort.SliceStable(lows, func(i, j int) bool {
		return lows[i].score < lows[j].score
	})

	var areas []models.FocusArea

	if critical := criticalArea(lows); critical != nil {
		areas = append(areas, *critical)
	}

	if len(sorted) > 0 {
		worst := res.Dimensions[sorted[0].ID]
		if worst.Average < highAverageFloor {
			areas = append(areas, models.FocusArea{
				Priority: models.PriorityHigh,
				Title:    fmt.Sprintf("Strengthen %s", worst.Name),
				Description: fmt.Sprintf(
					"This dimension scored %.1f/6 and represents the biggest opportunity for improvement.",
					worst.Average),
				Recommendations: recommendationsFor(sorted[0].ID),
			})
		}
	}

	if len(sorted) > 1 {
		second := res.Dimensions[sorted[1].ID]
		if second.Average < mediumAverageFloor {
			areas = append(areas, models.FocusArea{
				Priority:        models.PriorityMedium,
				Title:           fmt.Sprintf("Develop %s", second.Name),
				Description:     fmt.Sprintf("Secondary focus area scoring %.1f/6.", second.Average),
				Recommendations: recommendationsFor(sorted[1].ID)[:maxMediumRecommendations],
			})
		}
	}

	if len(areas) == 0 && res.Overall >= optimizeOverallFloor && len(sorted) > 0 {
		best := res.Dimensions[sorted[len(sorted)-1].ID]
		areas = append(areas, models.FocusArea{
			Priority: models.PriorityOptimize,
			Title:    "Drive Excellence",
			Description: fmt.Sprintf(
				"Strong overall performance (%.1f/6). Focus on optimization and sharing best practices.",
				res.Overall),
			Recommendations: []string{
				fmt.Sprintf("Leverage %s as a strength to mentor other teams", best.Name),
				"Document and share successful practices with other pods",
				"Explore advanced techniques and continuous optimization",
			},
		})
	}

	return areas
}

// criticalArea builds the CRITICAL entry when any low scorer is at or
// below the critical ceiling; nil otherwise.
func criticalArea(lows []lowScore) *models.FocusArea {
	var critical []lowScore
	for _, ls := range lows {
		if ls.score <= criticalScoreCeiling {
			critical = append(critical, ls)
		}
	}
	if len(critical) == 0 {
		return nil
	}

	plural := ""
	if len(critical) > 1 {
		plural = "s"
	}

	area := &models.FocusArea{
		Priority: models.PriorityCritical,
		Title:    "Immediate Action Required",
		Description: fmt.Sprintf("%d critical gap%s identified that need immediate attention.",
			len(critical), plural),
	}
	for i, ls := range critical {
		if i == maxCriticalRecommendations {
			break
		}
		area.Recommendations = append(area.Recommendations,
			"Address: "+truncate(ls.question.Text, questionTextLimit))
	}
	return area
}

// truncate cuts text to limit characters, marking the cut with an ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
