package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/termsearch/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State, st Styles) string {
	dots := strings.Repeat(".", s.DotCount)

	var left string
	switch {
	case s.Session.InFlight:
		left = st.StatusBusy.Render(fmt.Sprintf("%s Searching%s", s.Spinner.View(), dots))
	case s.Session.Processing:
		left = st.StatusBusy.Render(fmt.Sprintf("%s Processing%s", s.Spinner.View(), dots))
	default:
		left = st.StatusReady.Render("Ready")
	}

	var info []string
	if n := len(s.Session.Filters); n > 0 {
		info = append(info, fmt.Sprintf("%d filter(s)", n))
	}
	if s.RootPath != "" {
		info = append(info, "Root: "+s.RootPath)
	}
	if s.Focus == models.FocusFilters {
		info = append(info, "←/→ move  space toggle  tab back")
	} else {
		info = append(info, "tab filters  ctrl+o settings")
	}

	return fmt.Sprintf("%s  %s", left, st.StatusInfo.Render(strings.Join(info, "  ")))
}
