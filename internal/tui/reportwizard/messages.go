package reportwizard

import (
	"github.com/aquagen/aquagen/internal/catalog"
	"github.com/aquagen/aquagen/internal/report"
)

// OptionChosenMsg is sent when the user picks an option on a question step.
type OptionChosenMsg struct {
	ID    catalog.QuestionID
	Value string
}

// LocationChangedMsg is sent whenever the location input value changes.
type LocationChangedMsg struct {
	Value string
}

// ParameterToggledMsg is sent when the user toggles a parameter checkbox.
type ParameterToggledMsg struct {
	Name string
}

// NextStepMsg requests forward navigation.
type NextStepMsg struct{}

// PrevStepMsg requests backward navigation.
type PrevStepMsg struct{}

// GenerateRequestedMsg is sent when the user activates the Generate button.
type GenerateRequestedMsg struct{}

// DownloadRequestedMsg is sent when the user activates the Download PDF button.
type DownloadRequestedMsg struct{}

// reportReadyMsg carries a successful report service result.
type reportReadyMsg struct {
	report *report.Report
}

// reportFailedMsg carries a report service failure.
type reportFailedMsg struct {
	err error
}

// pdfSavedMsg carries the path of a successful PDF export.
type pdfSavedMsg struct {
	path string
}

// pdfFailedMsg carries a PDF export failure.
type pdfFailedMsg struct {
	err error
}
