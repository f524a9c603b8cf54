package views

import (
	"strings"

	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/Cyclone1070/termsearch/internal/ui/models"
	"github.com/Cyclone1070/termsearch/internal/ui/services"
)

// RenderHistory renders the scrollback
func RenderHistory(s models.State) string {
	return s.Viewport.View()
}

// HistoryOptions controls how entries are formatted.
type HistoryOptions struct {
	Width    int
	DotCount int
	Markdown bool
	Renderer services.MarkdownRenderer
	Styles   Styles
}

// FormatHistory formats the entries for the viewport
func FormatHistory(entries []session.Entry, opts HistoryOptions) string {
	lines := make([]string, 0, len(entries)*2)
	for _, entry := range entries {
		lines = append(lines, formatEntry(entry, opts))
	}
	return strings.Join(lines, "\n")
}

func formatEntry(entry session.Entry, opts HistoryOptions) string {
	st := opts.Styles
	switch e := entry.(type) {
	case session.UserEntry:
		return st.User.Render("> " + e.Content)
	case session.SystemEntry:
		switch {
		case e.Loading:
			// Loading messages end in "..."; animate them instead.
			base := strings.TrimSuffix(e.Content, "...")
			return st.Loading.Render(base + strings.Repeat(".", opts.DotCount))
		case e.Error:
			return st.Error.Render(e.Content)
		case e.Markdown && opts.Markdown:
			rendered, err := services.RenderMarkdown(e.Content, opts.Width, opts.Renderer)
			if err == nil {
				return rendered
			}
		}
		return st.System.Render(e.Content)
	case session.ResultsEntry:
		var parts []string
		if kw := services.FormatKeywords(e.Keywords); kw != "" {
			parts = append(parts, st.Keywords.Render(kw))
		}
		parts = append(parts, st.Result.Render(services.FormatResults(e.Results)))
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}
