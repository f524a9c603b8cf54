package views

import (
	"github.com/Cyclone1070/termsearch/internal/ui/models"
)

// RenderInput renders the input bar
func RenderInput(s models.State, st Styles) string {
	style := st.Input
	if s.Focus == models.FocusInput && !s.Busy() {
		style = st.InputFocused
	}
	if s.Width > 2 {
		style = style.Width(s.Width - 2)
	}
	return style.Render(s.Input.View())
}
