package reportwizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aquagen/aquagen/internal/catalog"
	"github.com/aquagen/aquagen/internal/report"
	"github.com/aquagen/aquagen/internal/tui/theme"
	"github.com/aquagen/aquagen/internal/tui/wizard"
)

// Button positions on the details step.
const (
	btnDetailsBack     wizard.ButtonID = 0
	btnDetailsGenerate wizard.ButtonID = 1
)

// Focus positions within the details step.
const (
	focusLocation = 0
	focusParams   = 1
	focusButtons  = 2
)

// DetailsStep renders the location input and the parameter checklist.
// Field edits are reported to the wizard as messages; the Generate
// button is enabled and disabled by the wizard as gating conditions
// change.
type DetailsStep struct {
	location   textinput.Model
	parameters optionList

	buttonBar  *wizard.ButtonBar
	focusIndex int

	width  int
	height int
}

// NewDetailsStep creates the details step, restoring any location and
// parameter selections already present in the form.
func NewDetailsStep(form report.FormData, generateEnabled bool) *DetailsStep {
	ti := textinput.New()
	ti.Placeholder = "e.g., Jaipur district"
	ti.CharLimit = 120
	ti.SetValue(form.Location)
	ti.Focus()

	params := newOptionList(catalog.Parameters(), true)
	params.MarkSelected(form.Parameters...)

	genState := wizard.ButtonDisabled
	if generateEnabled {
		genState = wizard.ButtonNormal
	}
	buttonBar := wizard.NewButtonBar([]wizard.Button{
		{Label: "← Back", State: wizard.ButtonNormal},
		{Label: "Generate Report", State: genState},
	})

	return &DetailsStep{
		location:   ti,
		parameters: params,
		buttonBar:  buttonBar,
	}
}

// Init initializes the details step.
func (s *DetailsStep) Init() tea.Cmd {
	return textinput.Blink
}

// SetGenerateEnabled updates the Generate button gate.
func (s *DetailsStep) SetGenerateEnabled(enabled bool) {
	state := wizard.ButtonDisabled
	if enabled {
		state = wizard.ButtonNormal
	}
	s.buttonBar.SetState(btnDetailsGenerate, state)
}

// Update handles messages for the details step.
func (s *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			s.cycleFocus(1)
			return nil
		case "shift+tab":
			s.cycleFocus(-1)
			return nil
		}

		switch s.focusIndex {
		case focusLocation:
			if keyMsg.String() == "enter" {
				// Enter moves on to the checklist
				s.cycleFocus(1)
				return nil
			}
		case focusButtons:
			switch keyMsg.String() {
			case "left":
				s.buttonBar.FocusPrev()
				return nil
			case "right":
				s.buttonBar.FocusNext()
				return nil
			case "enter", " ":
				return s.activateButton(s.buttonBar.FocusedButton())
			}
			return nil
		}
	}

	switch s.focusIndex {
	case focusLocation:
		before := s.location.Value()
		var cmd tea.Cmd
		s.location, cmd = s.location.Update(msg)
		if after := s.location.Value(); after != before {
			return teaBatch(cmd, func() tea.Msg {
				return LocationChangedMsg{Value: after}
			})
		}
		return cmd
	case focusParams:
		var toggled string
		s.parameters, toggled = s.parameters.Update(msg)
		if toggled != "" {
			return func() tea.Msg {
				return ParameterToggledMsg{Name: toggled}
			}
		}
	}
	return nil
}

// cycleFocus moves focus across location → parameters → buttons.
func (s *DetailsStep) cycleFocus(dir int) {
	if s.focusIndex == focusButtons {
		// Let focus travel within the bar before leaving it
		if dir > 0 && s.buttonBar.FocusNext() {
			return
		}
		if dir < 0 && s.buttonBar.FocusPrev() {
			return
		}
	}

	s.location.Blur()
	s.parameters.Blur()
	s.buttonBar.Blur()

	s.focusIndex += dir
	if s.focusIndex > focusButtons {
		s.focusIndex = focusLocation
	}
	if s.focusIndex < focusLocation {
		s.focusIndex = focusButtons
	}

	switch s.focusIndex {
	case focusLocation:
		s.location.Focus()
	case focusParams:
		s.parameters.Focus()
	case focusButtons:
		if dir > 0 {
			s.buttonBar.FocusFirst()
		} else {
			s.buttonBar.FocusLast()
		}
	}
}

func (s *DetailsStep) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case btnDetailsBack:
		return func() tea.Msg { return PrevStepMsg{} }
	case btnDetailsGenerate:
		return func() tea.Msg { return GenerateRequestedMsg{} }
	}
	return nil
}

// View renders the details step.
func (s *DetailsStep) View() string {
	currentTheme := theme.Current()

	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(currentTheme.FgBase))

	inputStyle := lipgloss.NewStyle().
		Width(54).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(currentTheme.BorderDefault))
	if s.focusIndex == focusLocation {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color(currentTheme.Primary))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render("Location"),
		inputStyle.Render(s.location.View()),
		"",
		labelStyle.Render("Parameters to include"),
		s.parameters.View(),
		s.buttonBar.Render(),
	)
}

// SetSize updates the dimensions of the details step.
func (s *DetailsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}

// teaBatch wraps tea.Batch dropping nil commands.
func teaBatch(cmds ...tea.Cmd) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	if len(out) == 1 {
		return out[0]
	}
	return tea.Batch(out...)
}
