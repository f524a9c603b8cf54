package views

import (
	"slices"
	"strings"

	"github.com/Cyclone1070/termsearch/internal/ui/models"
)

// RenderFilterBar renders the toggleable filter tags. Active tags are
// highlighted; the cursor is shown while the bar has focus.
func RenderFilterBar(s models.State, st Styles) string {
	if len(s.FilterOptions) == 0 {
		return ""
	}

	chips := make([]string, 0, len(s.FilterOptions))
	for i, tag := range s.FilterOptions {
		style := st.FilterChip
		label := "[ ] " + tag
		if slices.Contains(s.Session.Filters, tag) {
			style = st.FilterActive
			label = "[x] " + tag
		}
		if s.Focus == models.FocusFilters && i == s.FilterIndex {
			style = style.Inherit(st.FilterCursor)
		}
		chips = append(chips, style.Render(label))
	}
	return st.FilterLabel.Render("Filters:") + " " + strings.Join(chips, "")
}
