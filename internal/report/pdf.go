package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aquagen/aquagen/internal/logger"
)

const pdfRenderTimeout = 30 * time.Second

// PDFExporter renders a report to PDF through headless Chrome and
// writes it under outputDir.
type PDFExporter struct {
	outputDir  string
	chromePath string
}

// NewPDFExporter creates an exporter writing into outputDir.
func NewPDFExporter(outputDir string) *PDFExporter {
	return &PDFExporter{
		outputDir:  outputDir,
		chromePath: detectChromePath(),
	}
}

// Export renders the report and returns the written PDF path.
func (e *PDFExporter) Export(ctx context.Context, r *Report) (string, error) {
	htmlDoc := buildHTML(r)

	pdf, err := e.printToPDF(ctx, htmlDoc)
	if err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(e.outputDir, pdfFilename(r))
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	logger.Debug("PDF written to %s (%d bytes)", path, len(pdf))
	return path, nil
}

func (e *PDFExporter) printToPDF(ctx context.Context, htmlDoc string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, pdfRenderTimeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

// pdfFilename builds a stable, filesystem-safe name for the export.
func pdfFilename(r *Report) string {
	name := slug.Make(r.Title)
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("%s-%s.pdf", name, r.GeneratedAt.Format("20060102-150405"))
}

// buildHTML wraps the report markdown in a print-ready HTML document.
func buildHTML(r *Report) string {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(r.Markdown), &content); err != nil {
		// Fall back to preformatted text; the markdown came from the
		// model and may be arbitrary.
		content.Reset()
		content.WriteString("<pre>" + html.EscapeString(r.Markdown) + "</pre>")
	}

	var meta strings.Builder
	meta.WriteString("<div><strong>Location:</strong> " + html.EscapeString(strings.TrimSpace(r.Location)) + "</div>")
	meta.WriteString("<div><strong>Period:</strong> " + html.EscapeString(r.Period) + "</div>")
	if len(r.Parameters) > 0 {
		meta.WriteString("<div><strong>Parameters:</strong> " + html.EscapeString(strings.Join(r.Parameters, ", ")) + "</div>")
	}
	if !r.GeneratedAt.IsZero() {
		meta.WriteString("<div><strong>Generated:</strong> " + html.EscapeString(r.GeneratedAt.Format("January 2, 2006 at 3:04 PM MST")) + "</div>")
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(r.Title) + "</title>" +
		"<style>" +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;} " +
		"body{font-family:Georgia,serif;color:#1c1917;background:#fff;padding:0.6rem;line-height:1.5;} " +
		".pdf-wrap{max-width:1000px;margin:0 auto;border-left:3px solid #0e7490;padding:0 0.65rem;} " +
		".report-meta{color:#44403c;font-size:0.85rem;margin-bottom:1rem;} .report-meta strong{color:#1c1917;} " +
		"h1,h2,h3{font-family:Helvetica,Arial,sans-serif;color:#164e63;} " +
		"table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;} " +
		"th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;} " +
		"thead th{background:#f1f5f9;font-weight:700;} " +
		"@media print{ @page{size:auto;margin:12mm;} body{padding:0;} .pdf-wrap{max-width:none;} }" +
		"</style></head><body>" +
		"<div class='pdf-wrap'><div class='report-meta'>" + meta.String() + "</div>" +
		"<div class='report-html'>" + content.String() + "</div></div>" +
		"</body></html>"
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
