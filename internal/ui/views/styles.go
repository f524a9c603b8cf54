package views

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style used by the views.
type Styles struct {
	User     lipgloss.Style
	System   lipgloss.Style
	Error    lipgloss.Style
	Loading  lipgloss.Style
	Result   lipgloss.Style
	Keywords lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	FilterLabel  lipgloss.Style
	FilterChip   lipgloss.Style
	FilterActive lipgloss.Style
	FilterCursor lipgloss.Style

	StatusReady lipgloss.Style
	StatusBusy  lipgloss.Style
	StatusInfo  lipgloss.Style

	Panel         lipgloss.Style
	PanelTitle    lipgloss.Style
	PanelSelected lipgloss.Style
	Hint          lipgloss.Style
}

// NewStyles builds the styles for a palette.
func NewStyles(p Palette) Styles {
	chip := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Subtle)

	return Styles{
		User:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		System:   lipgloss.NewStyle().Foreground(p.Text),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Loading:  lipgloss.NewStyle().Foreground(p.Warning),
		Result:   lipgloss.NewStyle().Foreground(p.Text).PaddingLeft(2),
		Keywords: lipgloss.NewStyle().Foreground(p.Subtle).Italic(true).PaddingLeft(2),

		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		InputFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(0, 1),

		FilterLabel:  lipgloss.NewStyle().Foreground(p.Subtle),
		FilterChip:   chip,
		FilterActive: chip.Foreground(p.Success).Bold(true),
		FilterCursor: lipgloss.NewStyle().Underline(true),

		StatusReady: lipgloss.NewStyle().Foreground(p.Success),
		StatusBusy:  lipgloss.NewStyle().Foreground(p.Warning),
		StatusInfo:  lipgloss.NewStyle().Foreground(p.Subtle),

		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(1, 2),
		PanelTitle:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		PanelSelected: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Hint:          lipgloss.NewStyle().Faint(true),
	}
}

// StylesFor builds the styles for a resolved flavour name.
func StylesFor(flavour string) Styles {
	return NewStyles(PaletteFor(flavour))
}
