package views

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// ResolveTheme maps a settings theme to a catppuccin flavour name. "system"
// asks hasDarkBackground; a nil func is treated as a dark terminal.
func ResolveTheme(theme string, hasDarkBackground func() bool) string {
	switch theme {
	case "dark":
		return "mocha"
	case "light":
		return "latte"
	case "mocha", "macchiato", "frappe", "latte":
		return theme
	}
	if hasDarkBackground != nil && !hasDarkBackground() {
		return "latte"
	}
	return "mocha"
}

// IsDark reports whether a resolved flavour has a dark background.
func IsDark(flavour string) bool {
	return flavour != "latte"
}

// Palette is the set of colours the views draw with.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Border  lipgloss.Color
}

// PaletteFor returns the palette of a resolved flavour, defaulting to mocha.
func PaletteFor(flavour string) Palette {
	switch flavour {
	case "latte":
		l := catppuccin.Latte
		return newPalette(l.Mauve().Hex, l.Blue().Hex, l.Text().Hex, l.Overlay1().Hex, l.Red().Hex, l.Green().Hex, l.Yellow().Hex, l.Surface2().Hex)
	case "frappe":
		f := catppuccin.Frappe
		return newPalette(f.Mauve().Hex, f.Blue().Hex, f.Text().Hex, f.Overlay1().Hex, f.Red().Hex, f.Green().Hex, f.Yellow().Hex, f.Surface2().Hex)
	case "macchiato":
		m := catppuccin.Macchiato
		return newPalette(m.Mauve().Hex, m.Blue().Hex, m.Text().Hex, m.Overlay1().Hex, m.Red().Hex, m.Green().Hex, m.Yellow().Hex, m.Surface2().Hex)
	default:
		m := catppuccin.Mocha
		return newPalette(m.Mauve().Hex, m.Blue().Hex, m.Text().Hex, m.Overlay1().Hex, m.Red().Hex, m.Green().Hex, m.Yellow().Hex, m.Surface2().Hex)
	}
}

func newPalette(primary, accent, text, subtle, errColor, success, warning, border string) Palette {
	return Palette{
		Primary: lipgloss.Color(primary),
		Accent:  lipgloss.Color(accent),
		Text:    lipgloss.Color(text),
		Subtle:  lipgloss.Color(subtle),
		Error:   lipgloss.Color(errColor),
		Success: lipgloss.Color(success),
		Warning: lipgloss.Color(warning),
		Border:  lipgloss.Color(border),
	}
}
