package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func samplePDFReport() *Report {
	return &Report{
		Title:       "Water Quality Assessment — Jaipur district",
		Markdown:    "# Heading\n\nSome *analysis* with a <script>alert(1)</script> mention.\n\n| A | B |\n|---|---|\n| 1 | 2 |\n",
		ReportType:  "Water Quality Assessment",
		Location:    " Jaipur district ",
		Period:      "Last 1 year",
		Parameters:  []string{"pH Level", "Fluoride Level"},
		Model:       "claude-sonnet-4-5",
		GeneratedAt: time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC),
	}
}

func TestPDFFilename(t *testing.T) {
	t.Parallel()
	name := pdfFilename(samplePDFReport())

	assert.Equal(t, "water-quality-assessment-jaipur-district-20260825-143000.pdf", name)
}

func TestPDFFilename_EmptyTitle(t *testing.T) {
	t.Parallel()
	r := samplePDFReport()
	r.Title = "???"

	name := pdfFilename(r)
	assert.True(t, strings.HasPrefix(name, "report-"), "unsluggable titles fall back to a generic name, got %s", name)
}

func TestBuildHTML(t *testing.T) {
	t.Parallel()
	doc := buildHTML(samplePDFReport())

	assert.Contains(t, doc, "<title>Water Quality Assessment — Jaipur district</title>")
	assert.Contains(t, doc, "<h1") // markdown converted
	assert.Contains(t, doc, "<table>") // GFM tables enabled
	assert.Contains(t, doc, "<strong>Location:</strong> Jaipur district")
	assert.Contains(t, doc, "<strong>Period:</strong> Last 1 year")
	assert.Contains(t, doc, "pH Level, Fluoride Level")
	assert.Contains(t, doc, "Generated:")
	assert.NotContains(t, doc, "<script>alert(1)</script>", "raw html in the markdown must not pass through")
}

func TestBuildHTML_NoParameters(t *testing.T) {
	t.Parallel()
	r := samplePDFReport()
	r.Parameters = nil

	doc := buildHTML(r)
	assert.NotContains(t, doc, "<strong>Parameters:</strong>")
}

func TestNewPDFExporter(t *testing.T) {
	t.Parallel()
	e := NewPDFExporter("out")
	assert.Equal(t, "out", e.outputDir)
}
