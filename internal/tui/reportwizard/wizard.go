// Package reportwizard implements the step-gated questionnaire that
// collects report parameters, hands them to the report service, and
// renders the returned report with a PDF export option.
package reportwizard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/aquagen/aquagen/internal/catalog"
	"github.com/aquagen/aquagen/internal/config"
	"github.com/aquagen/aquagen/internal/logger"
	"github.com/aquagen/aquagen/internal/report"
	"github.com/aquagen/aquagen/internal/tui"
	"github.com/aquagen/aquagen/internal/tui/theme"
)

// User-visible error messages. Errors carry no structured codes; a
// single message slot is surfaced and cleared on any field edit.
const (
	errBlankLocation  = "Please enter a location"
	errGenerateFailed = "Failed to generate report"
	errDownloadFailed = "Failed to download PDF"
)

// Modal layout constants
const (
	modalWidth        = 70                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// Model is the wizard controller. It exclusively owns the form and
// wizard state; step components only report user intent as messages.
// Collaborators (report service, exporter, credentials) are injected
// at construction so tests can substitute doubles.
type Model struct {
	questions []catalog.Question

	// Wizard state
	step       int // 0..len(questions): question index, or the details screen
	form       report.FormData
	generating bool
	exporting  bool
	errMsg     string
	result     *report.Report
	savedPath  string

	// Collaborators
	svc      report.Service
	exporter report.Exporter
	creds    config.Credentials

	// Step components
	questionStep *QuestionStep
	detailsStep  *DetailsStep
	resultStep   *ResultStep
	spinner      tui.Spinner

	width     int
	height    int
	cancelled bool
	ctx       context.Context
}

// New creates a wizard controller with its collaborators.
func New(svc report.Service, exporter report.Exporter, creds config.Credentials) *Model {
	return &Model{
		questions: catalog.Questions(),
		svc:       svc,
		exporter:  exporter,
		creds:     creds,
		spinner:   tui.NewDefaultSpinner(),
		ctx:       context.Background(),
	}
}

// Run is the entry point for the report wizard. It creates a
// standalone Bubbletea program, runs it, and returns any error.
func Run(svc report.Service, exporter report.Exporter, creds config.Credentials) error {
	m := New(svc, exporter, creds)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if wizModel.cancelled {
		return fmt.Errorf("wizard cancelled by user")
	}

	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.result != nil {
				// Result is terminal; ESC simply leaves the app.
				return m, tea.Quit
			}
			if m.generating {
				// No cancellation contract for the in-flight request.
				return m, nil
			}
			if m.step == 0 {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.goToStep(-1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case OptionChosenMsg:
		if m.result == nil && !m.generating {
			m.selectOption(msg.ID, msg.Value)
		}
		return m, nil

	case LocationChangedMsg:
		if m.result == nil && !m.generating {
			m.setLocation(msg.Value)
			m.syncDetailsGate()
		}
		return m, nil

	case ParameterToggledMsg:
		if m.result == nil && !m.generating {
			m.toggleParameter(msg.Name)
			m.syncDetailsGate()
		}
		return m, nil

	case NextStepMsg:
		if m.result == nil && !m.generating {
			return m, m.goToStep(+1)
		}
		return m, nil

	case PrevStepMsg:
		if m.result == nil && !m.generating {
			return m, m.goToStep(-1)
		}
		return m, nil

	case GenerateRequestedMsg:
		if m.result != nil {
			return m, nil
		}
		cmd := m.generateReport()
		m.syncDetailsGate()
		return m, cmd

	case reportReadyMsg:
		m.generating = false
		m.result = msg.report
		m.resultStep = NewResultStep(msg.report.Markdown)
		m.updateCurrentStepSize()
		logger.Info("Report ready: %q (%d chars)", msg.report.Title, len(msg.report.Markdown))
		return m, m.resultStep.Init()

	case reportFailedMsg:
		m.generating = false
		text := strings.TrimSpace(msg.err.Error())
		if text == "" {
			text = errGenerateFailed
		}
		m.errMsg = text
		m.syncDetailsGate()
		return m, nil

	case DownloadRequestedMsg:
		cmd := m.downloadReport()
		if m.resultStep != nil {
			m.resultStep.SetExporting(m.exporting)
		}
		return m, cmd

	case pdfSavedMsg:
		m.exporting = false
		m.savedPath = msg.path
		if m.resultStep != nil {
			m.resultStep.SetExporting(false)
			m.resultStep.SetSavedPath(msg.path)
		}
		return m, nil

	case pdfFailedMsg:
		m.exporting = false
		m.errMsg = errDownloadFailed
		logger.Error("PDF export failed: %v", msg.err)
		if m.resultStep != nil {
			m.resultStep.SetExporting(false)
		}
		return m, nil
	}

	// While a request is outstanding only the spinner animates; the
	// details step does not receive input.
	if m.generating {
		cmd := m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.updateCurrentStep(msg)
}

// --- State operations -------------------------------------------------

// selectOption stores an answer under its question identifier via an
// explicit per-identifier switch. Any edit clears a shown error.
func (m *Model) selectOption(id catalog.QuestionID, value string) {
	switch id {
	case catalog.QuestionReportType:
		m.form.ReportType = value
	case catalog.QuestionPeriod:
		m.form.Period = value
	default:
		logger.Warn("Unknown question id %q", id)
		return
	}
	m.errMsg = ""
}

// setLocation stores the location verbatim (no trimming on input).
func (m *Model) setLocation(value string) {
	m.form.Location = value
	m.errMsg = ""
}

// toggleParameter flips a parameter's membership. Toggling twice is a
// no-op.
func (m *Model) toggleParameter(name string) {
	m.form.ToggleParameter(name)
	m.errMsg = ""
}

// answerFor returns the stored answer for a question identifier.
func (m *Model) answerFor(id catalog.QuestionID) string {
	switch id {
	case catalog.QuestionReportType:
		return m.form.ReportType
	case catalog.QuestionPeriod:
		return m.form.Period
	}
	return ""
}

// currentAnswered reports whether the active question has an answer.
// The details screen has its own gating and always passes.
func (m *Model) currentAnswered() bool {
	if m.step < len(m.questions) {
		return m.answerFor(m.questions[m.step].ID) != ""
	}
	return true
}

// goToStep moves the wizard by delta steps. Previous is a no-op on the
// first step; Next is a no-op while the active question is unanswered.
func (m *Model) goToStep(delta int) tea.Cmd {
	if delta < 0 && m.step == 0 {
		return nil
	}
	if delta > 0 && !m.currentAnswered() {
		return nil
	}
	m.step += delta
	return m.initCurrentStep()
}

// canGenerate reports whether the generate action is available: no
// request in flight, at least one parameter, non-blank location.
func (m *Model) canGenerate() bool {
	return !m.generating &&
		len(m.form.Parameters) > 0 &&
		strings.TrimSpace(m.form.Location) != ""
}

// generateReport validates the form and dispatches the service call.
// A blank location fails fast with a validation message and no call;
// an empty parameter set is a gating condition, not an error branch.
func (m *Model) generateReport() tea.Cmd {
	if m.generating {
		return nil
	}
	if strings.TrimSpace(m.form.Location) == "" {
		m.errMsg = errBlankLocation
		return nil
	}
	if len(m.form.Parameters) == 0 {
		return nil
	}

	m.generating = true
	m.errMsg = ""

	// Credential is read once per generate action; an absent key is
	// forwarded as the empty string and rejected by the service.
	svc := m.svc
	form := m.form
	apiKey := m.creds.APIKey()
	ctx := m.ctx

	return tea.Batch(
		m.spinner.Tick(),
		func() tea.Msg {
			r, err := svc.Generate(ctx, form, apiKey)
			if err != nil {
				return reportFailedMsg{err: err}
			}
			return reportReadyMsg{report: r}
		},
	)
}

// downloadReport dispatches the PDF export for the generated report.
// Failures never touch the report itself.
func (m *Model) downloadReport() tea.Cmd {
	if m.result == nil || m.exporting {
		return nil
	}
	m.exporting = true

	exporter := m.exporter
	r := m.result
	ctx := m.ctx

	return func() tea.Msg {
		path, err := exporter.Export(ctx, r)
		if err != nil {
			return pdfFailedMsg{err: err}
		}
		return pdfSavedMsg{path: path}
	}
}

// syncDetailsGate refreshes the Generate button state after anything
// that may change its gating conditions.
func (m *Model) syncDetailsGate() {
	if m.detailsStep != nil {
		m.detailsStep.SetGenerateEnabled(m.canGenerate())
	}
}

// --- Step plumbing ----------------------------------------------------

// onDetails reports whether the details screen is the active step.
func (m *Model) onDetails() bool {
	return m.result == nil && m.step == len(m.questions)
}

// initCurrentStep initializes the component for the current step and
// returns its init command.
func (m *Model) initCurrentStep() tea.Cmd {
	if m.result != nil {
		return nil
	}
	var cmd tea.Cmd
	if m.step < len(m.questions) {
		q := m.questions[m.step]
		m.questionStep = NewQuestionStep(q, m.step, len(m.questions), m.answerFor(q.ID))
		cmd = m.questionStep.Init()
	} else {
		m.detailsStep = NewDetailsStep(m.form, m.canGenerate())
		cmd = m.detailsStep.Init()
	}
	m.updateCurrentStepSize()
	return cmd
}

// updateCurrentStep forwards a message to the current step component.
func (m *Model) updateCurrentStep(msg tea.Msg) tea.Cmd {
	switch {
	case m.result != nil:
		if m.resultStep != nil {
			return m.resultStep.Update(msg)
		}
	case m.onDetails():
		if m.detailsStep != nil {
			return m.detailsStep.Update(msg)
		}
	default:
		if m.questionStep != nil {
			return m.questionStep.Update(msg)
		}
	}
	return nil
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4 // Terminal margin
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	// Subtract modal chrome: padding (2*2) + border (2) + title (~2) + hint (~2)
	height = height - 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the current step.
func (m *Model) updateCurrentStepSize() {
	contentWidth, contentHeight := m.getModalContentSize()

	if m.resultStep != nil {
		m.resultStep.SetSize(contentWidth, contentHeight)
	}
	if m.detailsStep != nil {
		m.detailsStep.SetSize(contentWidth, contentHeight)
	}
	if m.questionStep != nil {
		m.questionStep.SetSize(contentWidth, contentHeight)
	}
}

// --- Rendering --------------------------------------------------------

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()

	// Center on screen
	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// stepTitle names the active view. Selection is a pure function of
// state: a stored report always wins, then the details screen, then
// the active question.
func (m *Model) stepTitle() string {
	switch {
	case m.result != nil:
		return "AquaGen — Report"
	case m.onDetails():
		return fmt.Sprintf("AquaGen — Step %d of %d: Details", len(m.questions)+1, len(m.questions)+1)
	default:
		return fmt.Sprintf("AquaGen — Step %d of %d", m.step+1, len(m.questions)+1)
	}
}

// renderCurrentStep renders the content for the current step.
func (m *Model) renderCurrentStep() string {
	currentTheme := theme.Current()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(currentTheme.Primary)).
		MarginBottom(1)
	title := titleStyle.Render(m.stepTitle())

	var stepContent string
	switch {
	case m.result != nil:
		if m.resultStep != nil {
			stepContent = m.resultStep.View()
		}
	case m.onDetails():
		if m.detailsStep != nil {
			stepContent = m.detailsStep.View()
		}
		if m.generating {
			working := lipgloss.JoinHorizontal(
				lipgloss.Left,
				m.spinner.View(),
				" Generating report...",
			)
			stepContent = lipgloss.JoinVertical(
				lipgloss.Left,
				stepContent,
				"",
				lipgloss.NewStyle().Foreground(lipgloss.Color(currentTheme.FgMuted)).Render(working),
			)
		}
	default:
		if m.questionStep != nil {
			stepContent = m.questionStep.View()
		}
	}

	// Error line (single slot, cleared on any field edit)
	errorText := ""
	if m.errMsg != "" {
		errorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color(currentTheme.Error)).
			Bold(true).
			Render("✗ " + m.errMsg)
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.FgMuted)).
		Render("tab to navigate • esc to go back • ctrl+c to quit")

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(currentTheme.BorderDefault))

	// Constrain height on the result view so the report scrolls
	if m.result != nil {
		modalHeight := m.height - 4
		if modalHeight < 20 {
			modalHeight = 20
		}
		if modalHeight > 40 {
			modalHeight = 40
		}
		modalStyle = modalStyle.Height(modalHeight)
	}

	parts := []string{title, stepContent}
	if errorText != "" {
		parts = append(parts, "", errorText)
	}
	if m.result == nil {
		// The result step renders its own hint bar
		parts = append(parts, "", hint)
	}

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
