package views

import (
	"github.com/Cyclone1070/termsearch/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	st := StylesFor(s.Theme)

	if s.Settings.Open {
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			RenderSettingsPanel(s, st),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	sections := []string{RenderHistory(s)}
	if bar := RenderFilterBar(s, st); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, RenderInput(s, st), RenderStatus(s, st))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
