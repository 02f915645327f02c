package reportwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = "# Groundwater Report\n\nSome **analysis** text.\n"

func TestResultStep_DownloadEmitsRequest(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)
	require.Equal(t, btnDownload, s.buttonBar.FocusedButton())

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := findMsg[DownloadRequestedMsg](cmd)
	assert.True(t, ok)
}

func TestResultStep_ExitQuits(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, btnExit, s.buttonBar.FocusedButton())

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd(), "Exit should quit the program")
}

func TestResultStep_TabWrapsAcrossButtons(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, btnExit, s.buttonBar.FocusedButton())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, btnDownload, s.buttonBar.FocusedButton(), "tab wraps at the end of the bar")
}

func TestResultStep_ExportingDisablesDownload(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)

	s.SetExporting(true)
	assert.Equal(t, btnExit, s.buttonBar.FocusedButton(), "focus moves off the disabled Download button")

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Equal(t, btnExit, s.buttonBar.FocusedButton(), "Download is unreachable while exporting")

	s.SetExporting(false)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, btnDownload, s.buttonBar.FocusedButton())
}

func TestResultStep_ViewShowsSavedPath(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)
	s.SetSize(64, 20)

	s.SetSavedPath("reports/groundwater-report-20260825-120000.pdf")
	view := s.View()
	assert.Contains(t, view, "Saved to reports/groundwater-report-20260825-120000.pdf")
}

func TestResultStep_ViewShowsExportProgress(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)
	s.SetSize(64, 20)

	s.SetExporting(true)
	assert.Contains(t, s.View(), "Exporting PDF...")
}

func TestResultStep_RendersMarkdownContent(t *testing.T) {
	t.Parallel()
	s := NewResultStep(sampleMarkdown)
	s.SetSize(64, 20)

	assert.Contains(t, s.View(), "Groundwater Report")
}

func TestRenderMarkdown_FallsBackToPlainText(t *testing.T) {
	t.Parallel()
	out := renderMarkdown("plain text", 0)
	assert.NotEmpty(t, out)
}
