package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/scoring"
)

// Chart geometry. One horizontal bar per dimension, scaled over the 0-6
// score range.
const (
	chartWidth    = 640
	barHeight     = 22
	barGap        = 14
	labelWidth    = 240
	chartPadding  = 16
	scaleMaxScore = 6.0
)

// barColor picks the fill for a bar from its average score: green from 5
// up, orange from 3 up, red below.
func barColor(avg float64) string {
	switch {
	case avg >= 5:
		return "#10B981"
	case avg >= 3:
		return "#F59E0B"
	default:
		return "#EF4444"
	}
}

// BuildChartSVG renders the per-dimension averages as an inline SVG bar
// chart, the document report's stand-in for the on-screen radar chart.
func BuildChartSVG(m *bank.Model, res scoring.Result) string {
	height := chartPadding*2 + len(m.Dimensions)*(barHeight+barGap) - barGap
	barSpan := chartWidth - labelWidth - chartPadding*2 - 40

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`,
		chartWidth, height, chartWidth, height)
	b.WriteString("\n")

	y := chartPadding
	for _, dim := range m.Dimensions {
		score := res.Dimensions[dim.ID]
		width := int(float64(barSpan) * score.Average / scaleMaxScore)

		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="13" fill="#1F2937">%s</text>`,
			chartPadding, y+barHeight-7, html.EscapeString(dim.Name))
		b.WriteString("\n")
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="#E5E7EB"/>`,
			labelWidth, y, barSpan, barHeight)
		b.WriteString("\n")
		if width > 0 {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`,
				labelWidth, y, width, barHeight, barColor(score.Average))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="13" fill="#1F2937">%.1f</text>`,
			labelWidth+barSpan+8, y+barHeight-7, score.Average)
		b.WriteString("\n")

		y += barHeight + barGap
	}

	b.WriteString("</svg>")
	return b.String()
}
