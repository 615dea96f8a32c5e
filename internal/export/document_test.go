package export

import (
	"bytes"
	"strings"
	"testing"
)

// TestBuildMarkdownSections verifies the report carries every section in
// order with the score guide listed high to low
func TestBuildMarkdownSections(t *testing.T) {
	meta, m, res, areas, set := reportFixture(t)

	out := BuildMarkdown(meta, m, res, areas, set)

	wantSections := []string{
		"# Pod Delivery Assessment Report",
		"## Overall Score:",
		"## Dimension Scores",
		"## Main Focus Areas for Next Period",
		"## Score Guide",
		"## Detailed Responses by Dimension",
	}
	last := -1
	for _, section := range wantSections {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("markdown missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}

	// Score guide rows run 6 down to 1.
	six := strings.Index(out, "| 6 | ")
	one := strings.Index(out, "| 1 | ")
	if six < 0 || one < 0 || six > one {
		t.Error("score guide rows not ordered 6 to 1")
	}

	if !strings.Contains(out, "No response provided") {
		t.Error("markdown missing unanswered placeholder")
	}
	if !strings.Contains(out, "(no score)") {
		t.Error("markdown missing unscored response marker")
	}
}

// TestBuildMarkdownDimensionTable verifies one table row per dimension
// with answered counts
func TestBuildMarkdownDimensionTable(t *testing.T) {
	meta, m, res, areas, set := reportFixture(t)

	out := BuildMarkdown(meta, m, res, areas, set)
	for _, dim := range m.Dimensions {
		if !strings.Contains(out, "| "+dim.Name+" | ") {
			t.Errorf("markdown missing table row for dimension %q", dim.Name)
		}
	}
}

// TestBuildChartSVG verifies one bar group per dimension and sane geometry
func TestBuildChartSVG(t *testing.T) {
	_, m, res, _, _ := reportFixture(t)

	svg := BuildChartSVG(m, res)

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("output is not a self-contained svg element")
	}
	for _, dim := range m.Dimensions {
		if !strings.Contains(svg, ">"+dim.Name+"</text>") {
			t.Errorf("svg missing label for dimension %q", dim.Name)
		}
	}
	// Background track plus value bar per scored dimension.
	if got := strings.Count(svg, "<rect "); got < len(m.Dimensions) {
		t.Errorf("svg has %d rects, want at least %d", got, len(m.Dimensions))
	}
}

// TestBarColor verifies the score to color thresholds
func TestBarColor(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{6.0, "#10B981"},
		{5.0, "#10B981"},
		{4.9, "#F59E0B"},
		{3.0, "#F59E0B"},
		{2.9, "#EF4444"},
		{0, "#EF4444"},
	}
	for _, tt := range tests {
		if got := barColor(tt.avg); got != tt.want {
			t.Errorf("barColor(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

// TestWriteHTML verifies the standalone document embeds the chart and
// the rendered report
func TestWriteHTML(t *testing.T) {
	meta, m, res, areas, set := reportFixture(t)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, meta, m, res, areas, set); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output missing doctype")
	}
	if !strings.Contains(out, "<title>Apollo 2026-Q3 Assessment</title>") {
		t.Error("output missing title")
	}
	if !strings.Contains(out, "<figure><svg ") {
		t.Error("output missing inline chart")
	}
	if !strings.Contains(out, "Pod Delivery Assessment Report") {
		t.Error("output missing rendered report heading")
	}
	// The markdown tables must come through the table extension.
	if !strings.Contains(out, "<table>") {
		t.Error("output missing rendered tables")
	}
	if !strings.HasSuffix(out, "</html>\n") {
		t.Error("output not terminated")
	}
}
