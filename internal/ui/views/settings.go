package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/termsearch/internal/ui/models"
)

// RenderSettingsPanel renders the settings editor popup
func RenderSettingsPanel(s models.State, st Styles) string {
	p := s.Settings
	if !p.Open || len(p.Fields) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, st.PanelTitle.Render("Settings"))
	lines = append(lines, "")

	for i, field := range p.Fields {
		value := FieldValue(field, p)
		if p.Editing && i == p.Index {
			value = p.Editor.View()
		}
		row := fmt.Sprintf("%s: %s", field.Label, value)
		if i == p.Index {
			lines = append(lines, st.PanelSelected.Render("▸ "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}

	lines = append(lines, "")
	if p.Error != "" {
		lines = append(lines, st.Error.Render(p.Error))
	}
	hint := "↑/↓: Navigate  Enter: Edit  Ctrl+S: Save  Esc: Close"
	if p.Editing {
		hint = "Enter: Apply  Esc: Cancel"
	}
	lines = append(lines, st.Hint.Render(hint))

	return st.Panel.Render(strings.Join(lines, "\n"))
}

// FieldValue formats the draft value of a field for display.
func FieldValue(field models.SettingsField, p models.SettingsPanel) string {
	draft := p.Draft
	switch field.Kind {
	case models.FieldBool:
		if *field.Flag(&draft) {
			return "[x]"
		}
		return "[ ]"
	case models.FieldSecret:
		v := *field.Text(&draft)
		if v == "" {
			return "(not set)"
		}
		return strings.Repeat("•", min(len(v), 12))
	default:
		v := *field.Text(&draft)
		if v == "" {
			return "(not set)"
		}
		return v
	}
}
