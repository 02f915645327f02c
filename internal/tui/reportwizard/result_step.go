package reportwizard

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"

	"github.com/aquagen/aquagen/internal/tui/theme"
	"github.com/aquagen/aquagen/internal/tui/wizard"
)

// Button positions on the result step.
const (
	btnDownload wizard.ButtonID = 0
	btnExit     wizard.ButtonID = 1
)

// ResultStep displays the generated report with markdown rendering and
// offers a PDF download. This is the terminal view for the session:
// there is no path back to the question steps.
type ResultStep struct {
	viewport viewport.Model
	content  string

	buttonBar *wizard.ButtonBar
	exporting bool
	savedPath string

	width  int
	height int
}

// NewResultStep creates a result step for the report markdown.
func NewResultStep(content string) *ResultStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SetContent(renderMarkdown(content, 60))

	buttonBar := wizard.NewButtonBar([]wizard.Button{
		{Label: "Download PDF", State: wizard.ButtonNormal},
		{Label: "Exit", State: wizard.ButtonNormal},
	})
	buttonBar.FocusFirst()

	return &ResultStep{
		viewport:  vp,
		content:   content,
		buttonBar: buttonBar,
		width:     60,
		height:    20,
	}
}

// renderMarkdown renders markdown content with syntax highlighting using glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// Init initializes the result step.
func (s *ResultStep) Init() tea.Cmd {
	return nil
}

// SetExporting flips the export-in-flight gate. The Download button is
// disabled while a previous export has not resolved.
func (s *ResultStep) SetExporting(exporting bool) {
	s.exporting = exporting
	state := wizard.ButtonNormal
	if exporting {
		state = wizard.ButtonDisabled
	}
	s.buttonBar.SetState(btnDownload, state)
	if !exporting && s.buttonBar.FocusedButton() == wizard.ButtonNone {
		s.buttonBar.FocusFirst()
	}
}

// SetSavedPath records the destination of a completed export.
func (s *ResultStep) SetSavedPath(path string) {
	s.savedPath = path
}

// Update handles messages for the result step.
func (s *ResultStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "right":
			if !s.buttonBar.FocusNext() {
				s.buttonBar.FocusFirst()
			}
			return nil
		case "shift+tab", "left":
			if !s.buttonBar.FocusPrev() {
				s.buttonBar.FocusLast()
			}
			return nil
		case "enter", " ":
			return s.activateButton(s.buttonBar.FocusedButton())
		}
	}

	// Forward everything else to the viewport (scrolling)
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *ResultStep) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case btnDownload:
		if s.exporting {
			return nil
		}
		return func() tea.Msg { return DownloadRequestedMsg{} }
	case btnExit:
		return tea.Quit
	}
	return nil
}

// View renders the result step.
func (s *ResultStep) View() string {
	currentTheme := theme.Current()
	var b strings.Builder

	b.WriteString(s.viewport.View())
	b.WriteString("\n")

	// Status line: export progress or saved destination
	switch {
	case s.exporting:
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(currentTheme.FgMuted)).
			Render("Exporting PDF..."))
		b.WriteString("\n")
	case s.savedPath != "":
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(currentTheme.Success)).
			Render("✓ Saved to " + s.savedPath))
		b.WriteString("\n")
	}

	b.WriteString(s.buttonBar.Render())
	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"↑↓", "scroll",
		"tab", "buttons",
		"enter", "select",
	))

	return b.String()
}

// SetSize updates the dimensions for the result step.
func (s *ResultStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	s.viewport.SetWidth(width)

	// Reserve space for status, buttons, and hint bar
	viewportHeight := height - 3
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	s.viewport.SetHeight(viewportHeight)

	s.buttonBar.SetWidth(width)

	// Re-render markdown with new width
	s.viewport.SetContent(renderMarkdown(s.content, width))
}
