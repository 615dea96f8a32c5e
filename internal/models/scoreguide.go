package models

// ScoreLevel describes what one of the six score levels means. The guide
// is a fixed lookup table, not derived from loaded data, and is used
// unchanged by report rendering.
type ScoreLevel struct {
	Level       string `json:"level"`
	Description string `json:"description"`
	Meaning     string `json:"meaning"`
}

// ScoreGuide maps the 1..6 normalized scores to their level descriptions.
type ScoreGuide map[int]ScoreLevel

// DefaultScoreGuide returns the fixed six-level guide, 6=Mastered down to
// 1=Not Present.
func DefaultScoreGuide() ScoreGuide {
	return ScoreGuide{
		6: {Level: "Mastered", Description: "Consistently excellent, could teach others", Meaning: "This is a pod strength"},
		5: {Level: "Proficient", Description: "Usually works well, minor tweaks only", Meaning: "Maintain and refine"},
		4: {Level: "Capable", Description: "Generally good, some gaps to address", Meaning: "Steady improvement needed"},
		3: {Level: "Developing", Description: "Hit and miss, needs focus", Meaning: "Priority for improvement"},
		2: {Level: "Struggling", Description: "More often problematic than not", Meaning: "Requires urgent attention"},
		1: {Level: "Not Present", Description: "Rarely or never happens", Meaning: "Critical gap to address"},
	}
}

// LevelForAverage maps a (possibly fractional) average score onto the
// nearest level name, using half-point boundaries: 5.5 and up is
// Mastered, 4.5 and up Proficient, and so on down to Not Present.
func (g ScoreGuide) LevelForAverage(avg float64) string {
	switch {
	case avg >= 5.5:
		return g[6].Level
	case avg >= 4.5:
		return g[5].Level
	case avg >= 3.5:
		return g[4].Level
	case avg >= 2.5:
		return g[3].Level
	case avg >= 1.5:
		return g[2].Level
	default:
		return g[1].Level
	}
}
