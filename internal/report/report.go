// Package report defines the report form, the AI report service, and
// the PDF exporter.
package report

import (
	"context"
	"time"
)

// FormData is the wizard's collected input. Location is stored verbatim
// as typed; Parameters preserves insertion order for display.
type FormData struct {
	ReportType string
	Period     string
	Location   string
	Parameters []string
}

// HasParameter reports whether name is currently selected.
func (f *FormData) HasParameter(name string) bool {
	for _, p := range f.Parameters {
		if p == name {
			return true
		}
	}
	return false
}

// ToggleParameter adds name if absent, removes it if present. Toggling
// twice restores the original set.
func (f *FormData) ToggleParameter(name string) {
	for i, p := range f.Parameters {
		if p == name {
			f.Parameters = append(f.Parameters[:i], f.Parameters[i+1:]...)
			return
		}
	}
	f.Parameters = append(f.Parameters, name)
}

// Report is the processed report returned by the service. It is opaque
// to the wizard: only the result view and the PDF exporter consume it.
type Report struct {
	Title       string
	Markdown    string
	ReportType  string
	Location    string
	Period      string
	Parameters  []string
	Model       string
	GeneratedAt time.Time
}

// Service produces a report from a completed form. Implementations
// fail with a descriptive error on any failure: network, malformed
// response, invalid credential.
type Service interface {
	Generate(ctx context.Context, form FormData, apiKey string) (*Report, error)
}

// Exporter turns a processed report into a downloadable artifact and
// returns the written path.
type Exporter interface {
	Export(ctx context.Context, r *Report) (string, error)
}
