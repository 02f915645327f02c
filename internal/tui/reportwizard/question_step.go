package reportwizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aquagen/aquagen/internal/catalog"
	"github.com/aquagen/aquagen/internal/tui/theme"
	"github.com/aquagen/aquagen/internal/tui/wizard"
)

// Button positions on question steps.
const (
	btnBack wizard.ButtonID = 0
	btnNext wizard.ButtonID = 1
)

// QuestionStep renders a single catalog question as a radio list with
// Back/Next navigation. The step never mutates the form itself: picks
// are reported to the wizard as OptionChosenMsg.
type QuestionStep struct {
	question catalog.Question
	index    int
	total    int

	options       optionList
	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	width  int
	height int
}

// NewQuestionStep creates a question step, pre-selecting the answer
// already stored for this question (empty string when unanswered).
func NewQuestionStep(q catalog.Question, index, total int, selected string) *QuestionStep {
	options := newOptionList(q.Options, false)
	if selected != "" {
		options.MarkSelected(selected)
	}
	options.Focus()

	backState := wizard.ButtonNormal
	if index == 0 {
		// Previous is a no-op on the first step; gate it in the UI.
		backState = wizard.ButtonDisabled
	}
	nextState := wizard.ButtonNormal
	if selected == "" {
		nextState = wizard.ButtonDisabled
	}
	buttonBar := wizard.NewButtonBar([]wizard.Button{
		{Label: "← Back", State: backState},
		{Label: "Next →", State: nextState},
	})

	return &QuestionStep{
		question:  q,
		index:     index,
		total:     total,
		options:   options,
		buttonBar: buttonBar,
	}
}

// Init initializes the question step.
func (s *QuestionStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the question step.
func (s *QuestionStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if !s.buttonFocused {
				s.buttonFocused = true
				s.options.Blur()
				s.buttonBar.FocusFirst()
			} else if !s.buttonBar.FocusNext() {
				s.focusOptions()
			}
			return nil
		case "shift+tab":
			if !s.buttonFocused {
				s.buttonFocused = true
				s.options.Blur()
				s.buttonBar.FocusLast()
			} else if !s.buttonBar.FocusPrev() {
				s.focusOptions()
			}
			return nil
		}

		if s.buttonFocused {
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

	// Options focused
	var picked string
	s.options, picked = s.options.Update(msg)
	if picked != "" {
		// A choice always satisfies the Next gate.
		s.buttonBar.SetState(btnNext, wizard.ButtonNormal)
		id := s.question.ID
		return func() tea.Msg {
			return OptionChosenMsg{ID: id, Value: picked}
		}
	}
	return nil
}

func (s *QuestionStep) focusOptions() {
	s.buttonFocused = false
	s.buttonBar.Blur()
	s.options.Focus()
}

func (s *QuestionStep) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case btnBack:
		return func() tea.Msg { return PrevStepMsg{} }
	case btnNext:
		return func() tea.Msg { return NextStepMsg{} }
	}
	return nil
}

// View renders the question step.
func (s *QuestionStep) View() string {
	currentTheme := theme.Current()

	counter := lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.FgMuted)).
		Render(fmt.Sprintf("Question %d of %d", s.index+1, s.total))

	prompt := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(currentTheme.FgBase)).
		Render(s.question.Prompt)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		counter,
		"",
		prompt,
		"",
		s.options.View(),
		s.buttonBar.Render(),
	)
}

// SetSize updates the dimensions of the question step.
func (s *QuestionStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}
