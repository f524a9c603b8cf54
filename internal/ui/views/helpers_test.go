package views

import (
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/Cyclone1070/termsearch/internal/ui/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func createTestViewport() viewport.Model {
	return viewport.New(80, 20)
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}

func createTestSpinner() spinner.Model {
	return spinner.New()
}

func createTestState() models.State {
	return models.State{
		Width:         80,
		Height:        24,
		Input:         createTestTextInput(""),
		Viewport:      createTestViewport(),
		Spinner:       createTestSpinner(),
		Theme:         "mocha",
		FilterOptions: []string{"file", "folder", "pdf"},
		Session:       session.NewState().Snapshot(),
	}
}

func testOptions() HistoryOptions {
	return HistoryOptions{
		Width:    76,
		Markdown: true,
		Renderer: &MockMarkdownRenderer{},
		Styles:   StylesFor("mocha"),
	}
}
