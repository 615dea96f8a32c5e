package display

import (
	"strings"

	"github.com/fatih/color"
)

// barWidth is the score bar width in cells; the 0..6 range maps onto it.
const barWidth = 12

// ScoreBar renders an average score as a filled bar, e.g. "████████░░░░".
// When useColor is set the filled part is green from 5 up, yellow from 3
// up and red below, matching the report chart colors.
func ScoreBar(average float64, useColor bool) string {
	filled := int(average/6.0*float64(barWidth) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", barWidth-filled)

	if !useColor {
		return bar + rest
	}

	var c *color.Color
	switch {
	case average >= 5:
		c = color.New(color.FgGreen)
	case average >= 3:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	return c.Sprint(bar) + rest
}
