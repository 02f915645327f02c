package theme

import "charm.land/lipgloss/v2"

// Styles contains pre-built lipgloss styles shared across views.
type Styles struct {
	Title     lipgloss.Style
	ErrorText lipgloss.Style
	Muted     lipgloss.Style
}
