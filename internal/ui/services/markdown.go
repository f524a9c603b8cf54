package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderer renders markdown for the terminal
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour. Term renderers are cached per
// style and width because building one parses the whole style sheet.
type GlamourRenderer struct {
	style    string
	plain    bool
	renderer *glamour.TermRenderer
	width    int
}

// NewGlamourRenderer creates a renderer using the dark or light glamour style.
func NewGlamourRenderer(dark bool) *GlamourRenderer {
	r := &GlamourRenderer{}
	r.SetDark(dark)
	return r
}

// NewPlainRenderer creates a renderer for line output: no escape codes and
// no emphasis or code markers, only the document structure.
func NewPlainRenderer() *GlamourRenderer {
	return &GlamourRenderer{style: styles.NoTTYStyle, plain: true}
}

// plainStyle is the notty style without the markers it keeps around strong,
// emphasised and inline code text.
func plainStyle() ansi.StyleConfig {
	style := styles.NoTTYStyleConfig
	style.Document.Margin = nil
	style.Emph = ansi.StylePrimitive{}
	style.Strong = ansi.StylePrimitive{}
	style.Code.BlockPrefix = ""
	style.Code.BlockSuffix = ""
	style.Item = ansi.StylePrimitive{BlockPrefix: "- "}
	return style
}

// SetDark switches between the dark and light styles. A plain renderer
// ignores it.
func (r *GlamourRenderer) SetDark(dark bool) {
	if r.plain {
		return
	}
	style := "light"
	if dark {
		style = "dark"
	}
	if style != r.style {
		r.style = style
		r.renderer = nil
	}
}

// Render renders content wrapped to width.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	if r.renderer == nil || r.width != width {
		styleOpt := glamour.WithStylePath(r.style)
		if r.plain {
			styleOpt = glamour.WithStyles(plainStyle())
		}
		tr, err := glamour.NewTermRenderer(
			styleOpt,
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		r.renderer = tr
		r.width = width
	}
	return r.renderer.Render(content)
}

// RenderMarkdown renders content and trims the blank lines glamour adds around
// the document.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil {
		return content, nil
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
