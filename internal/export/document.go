package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/scoring"
)

// documentStyle keeps the standalone report readable without any
// external assets.
const documentStyle = `
body { font-family: -apple-system, "Segoe UI", sans-serif; color: #1F2937; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
h1 { color: #2563EB; }
h2 { border-bottom: 1px solid #E5E7EB; padding-bottom: 0.3rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #E5E7EB; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #F9FAFB; }
figure { margin: 1.5rem 0; }
`

// WriteHTML renders the document-form report as a standalone HTML page:
// the markdown report converted by goldmark, with the dimension chart
// embedded as inline SVG after the score summary.
func WriteHTML(w io.Writer, meta Meta, m *bank.Model, res scoring.Result, areas []models.FocusArea, answers models.AnswerSet) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(ghtml.WithHardWraps()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(BuildMarkdown(meta, m, res, areas, answers)), &body); err != nil {
		return fmt.Errorf("render report markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s %s Assessment</title>\n<style>%s</style>\n</head>\n<body>\n",
		html.EscapeString(meta.PodName), html.EscapeString(meta.Quarter), documentStyle); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<figure>%s</figure>\n", BuildChartSVG(m, res)); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
