package reportwizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aquagen/aquagen/internal/tui/theme"
)

// optionItem represents a single selectable entry with selection state.
type optionItem struct {
	label    string
	selected bool
}

// optionList manages option selection with keyboard navigation. In
// single-select mode it behaves like a radio group; in multi-select
// mode each entry toggles independently.
type optionList struct {
	items       []optionItem
	cursor      int
	multiSelect bool
	focused     bool
}

// newOptionList creates an option list from plain labels.
func newOptionList(labels []string, multiSelect bool) optionList {
	items := make([]optionItem, len(labels))
	for i, l := range labels {
		items[i] = optionItem{label: l}
	}
	return optionList{
		items:       items,
		multiSelect: multiSelect,
	}
}

// CursorUp moves cursor up.
func (l *optionList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// CursorDown moves cursor down.
func (l *optionList) CursorDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Toggle toggles selection of the cursor entry and returns its label.
func (l *optionList) Toggle() string {
	if len(l.items) == 0 {
		return ""
	}
	if l.multiSelect {
		l.items[l.cursor].selected = !l.items[l.cursor].selected
	} else {
		// Radio semantics: unselect all, select current
		for i := range l.items {
			l.items[i].selected = false
		}
		l.items[l.cursor].selected = true
	}
	return l.items[l.cursor].label
}

// MarkSelected pre-selects the entries matching labels.
func (l *optionList) MarkSelected(labels ...string) {
	for _, label := range labels {
		for i := range l.items {
			if l.items[i].label == label {
				l.items[i].selected = true
			}
		}
	}
}

// SelectedLabels returns labels of all selected entries in list order.
func (l optionList) SelectedLabels() []string {
	var labels []string
	for _, item := range l.items {
		if item.selected {
			labels = append(labels, item.label)
		}
	}
	return labels
}

// Focus focuses the list.
func (l *optionList) Focus() { l.focused = true }

// Blur blurs the list.
func (l *optionList) Blur() { l.focused = false }

// Update handles messages for the list. When a selection is made, the
// toggled label is returned alongside the updated list.
func (l optionList) Update(msg tea.Msg) (optionList, string) {
	if !l.focused {
		return l, ""
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.CursorUp()
		case "down", "j":
			l.CursorDown()
		case " ", "enter":
			return l, l.Toggle()
		}
	}
	return l, ""
}

// View renders the list.
func (l optionList) View() string {
	var b strings.Builder
	currentTheme := theme.Current()

	for i, item := range l.items {
		// Radio buttons for single-select, checkboxes for multi-select
		var indicator string
		if l.multiSelect {
			indicator = "☐"
			if item.selected {
				indicator = "☑"
			}
		} else {
			indicator = "○"
			if item.selected {
				indicator = "●"
			}
		}

		cursor := "  "
		if i == l.cursor && l.focused {
			cursor = "▶ "
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(currentTheme.FgBase))
		if i == l.cursor && l.focused {
			style = style.Foreground(lipgloss.Color(currentTheme.Primary)).Bold(true)
		}

		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, indicator, item.label)))
		b.WriteString("\n")
	}

	return b.String()
}
