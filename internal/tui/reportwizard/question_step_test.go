package reportwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquagen/aquagen/internal/catalog"
	"github.com/aquagen/aquagen/internal/tui/wizard"
)

func firstQuestion() catalog.Question {
	return catalog.Questions()[0]
}

func TestQuestionStep_InitialGating(t *testing.T) {
	t.Parallel()
	s := NewQuestionStep(firstQuestion(), 0, 2, "")

	// Back is gated on the first step, Next until an answer exists
	assert.False(t, s.buttonBar.FocusFirst(), "both buttons should start disabled on the first unanswered step")

	s2 := NewQuestionStep(firstQuestion(), 1, 2, "")
	require.True(t, s2.buttonBar.FocusFirst())
	assert.Equal(t, btnBack, s2.buttonBar.FocusedButton(), "Back is available past the first step")
}

func TestQuestionStep_RestoresStoredAnswer(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 0, 2, q.Options[1])

	assert.Equal(t, []string{q.Options[1]}, s.options.SelectedLabels())

	// Next is already enabled for an answered question
	require.True(t, s.buttonBar.FocusFirst())
	assert.Equal(t, btnNext, s.buttonBar.FocusedButton())
}

func TestQuestionStep_PickEmitsOptionChosen(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 0, 2, "")

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(OptionChosenMsg)
	require.True(t, ok, "picking an option should emit OptionChosenMsg")
	assert.Equal(t, q.ID, msg.ID)
	assert.Equal(t, q.Options[0], msg.Value)
}

func TestQuestionStep_TabReachesButtons(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 0, 2, q.Options[0])

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.True(t, s.buttonFocused)
	assert.Equal(t, btnNext, s.buttonBar.FocusedButton(), "Back is disabled on step 0 so Next gets focus")

	// Activating Next emits the navigation message
	cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(NextStepMsg)
	assert.True(t, ok)
}

func TestQuestionStep_TabPastButtonsReturnsToOptions(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 1, 2, q.Options[0])

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // options -> buttons (Back)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // Back -> Next
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // past the end -> options

	assert.False(t, s.buttonFocused)
	assert.Equal(t, wizard.ButtonNone, s.buttonBar.FocusedButton())
}

func TestQuestionStep_BackEmitsPrevStep(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 1, 2, "")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, btnBack, s.buttonBar.FocusedButton())

	cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(PrevStepMsg)
	assert.True(t, ok)
}

func TestQuestionStep_ViewShowsCounterAndPrompt(t *testing.T) {
	t.Parallel()
	q := firstQuestion()
	s := NewQuestionStep(q, 0, 2, "")
	s.SetSize(64, 20)

	view := s.View()
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, q.Prompt)
	for _, opt := range q.Options {
		assert.Contains(t, view, opt)
	}
}
