// Package wizard provides shared navigation components for step-gated
// flows.
package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aquagen/aquagen/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
)

// ButtonID identifies a button by position in the bar.
type ButtonID int

const (
	// ButtonNone is returned when no button is focused.
	ButtonNone ButtonID = -1
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with focus tracking. Disabled
// buttons are skipped during focus cycling, which is how step actions
// are gated: an unavailable action can never be activated.
type ButtonBar struct {
	buttons []Button
	focused ButtonID
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: ButtonNone,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetState updates the state of the button at id. Focus moves off a
// button that becomes disabled.
func (b *ButtonBar) SetState(id ButtonID, state ButtonState) {
	if int(id) < 0 || int(id) >= len(b.buttons) {
		return
	}
	b.buttons[id].State = state
	if state == ButtonDisabled && b.focused == id {
		if !b.FocusNext() {
			b.focused = ButtonNone
		}
	}
}

// FocusedButton returns the currently focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	return b.focused
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	b.focused = ButtonNone
}

// FocusFirst focuses the first enabled button. Returns false if every
// button is disabled.
func (b *ButtonBar) FocusFirst() bool {
	for i, btn := range b.buttons {
		if btn.State != ButtonDisabled {
			b.focused = ButtonID(i)
			return true
		}
	}
	b.focused = ButtonNone
	return false
}

// FocusLast focuses the last enabled button. Returns false if every
// button is disabled.
func (b *ButtonBar) FocusLast() bool {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = ButtonID(i)
			return true
		}
	}
	b.focused = ButtonNone
	return false
}

// FocusNext moves focus to the next enabled button. Returns false when
// focus would move past the end (caller decides whether to wrap).
func (b *ButtonBar) FocusNext() bool {
	for i := int(b.focused) + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = ButtonID(i)
			return true
		}
	}
	return false
}

// FocusPrev moves focus to the previous enabled button. Returns false
// when focus would move before the start.
func (b *ButtonBar) FocusPrev() bool {
	for i := int(b.focused) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = ButtonID(i)
			return true
		}
	}
	return false
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Primary)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var renderedButtons []string
	for i, btn := range b.buttons {
		var rendered string
		switch {
		case ButtonID(i) == b.focused:
			rendered = focusedStyle.Render(btn.Label)
		case btn.State == ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		default:
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	// Center the button bar
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}
