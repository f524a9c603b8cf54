package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/Cyclone1070/termsearch/internal/ui/models"
	"github.com/Cyclone1070/termsearch/internal/ui/services"
	"github.com/Cyclone1070/termsearch/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// chromeHeight is the number of rows below the history: filter bar, the
// bordered input and the status bar.
const chromeHeight = 5

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// ModelDeps are the collaborators of the Bubble Tea model.
type ModelDeps struct {
	Session        Session
	Store          SettingsStore
	Saver          SettingsSaver
	Renderer       services.MarkdownRenderer
	SpinnerFactory SpinnerFactory
	Logger         *zap.Logger

	// HasDarkBackground resolves the "system" theme. Defaults to dark.
	HasDarkBackground func() bool
}

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	ctx               context.Context
	session           Session
	store             SettingsStore
	saver             SettingsSaver
	renderer          services.MarkdownRenderer
	logger            *zap.Logger
	hasDarkBackground func() bool
	tickInterval      time.Duration

	configChan <-chan *config.Config
	readyChan  chan<- struct{}
}

// Internal messages
type tickMsg time.Time

type localDoneMsg struct {
	command session.Command
}

type searchDoneMsg session.SearchResult

type configReloadedMsg struct {
	cfg *config.Config
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	ctx context.Context,
	configChan <-chan *config.Config,
	readyChan chan<- struct{},
	deps ModelDeps,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = `Type a command or "help"...`
	ti.Prompt = "> "
	ti.Focus()

	vp := viewport.New(80, 20)

	spinnerFactory := deps.SpinnerFactory
	if spinnerFactory == nil {
		spinnerFactory = func() spinner.Model { return spinner.New(spinner.WithSpinner(spinner.Dot)) }
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  spinnerFactory(),
			Settings: models.SettingsPanel{
				Fields: models.SettingsFields(),
				Editor: textinput.New(),
			},
		},
		ctx:               ctx,
		session:           deps.Session,
		store:             deps.Store,
		saver:             deps.Saver,
		renderer:          deps.Renderer,
		logger:            logger,
		hasDarkBackground: deps.HasDarkBackground,
		configChan:        configChan,
		readyChan:         readyChan,
	}
	m.applyConfig(deps.Store.Config())
	m.refresh()
	return m
}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(m.tickInterval),
		listenForConfig(m.configChan),
	)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = max(msg.Height-chromeHeight, 1)
		m.state.Input.Width = max(msg.Width-8, 10)
		m.refresh()
		return m, nil

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		if m.state.Busy() {
			m.refresh()
		}
		return m, tick(m.tickInterval)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case localDoneMsg:
		m.session.Apply(msg.command)
		if _, ok := msg.command.(session.SettingsCommand); ok {
			m.openSettings()
		}
		m.refresh()
		return m, nil

	case searchDoneMsg:
		m.session.CompleteSearch(session.SearchResult(msg))
		m.refresh()
		return m, nil

	case configReloadedMsg:
		if msg.cfg != nil && !cmp.Equal(m.store.Config(), msg.cfg) {
			m.store.Update(msg.cfg)
			m.applyConfig(msg.cfg)
			m.session.Notify("Settings reloaded from config file")
			m.refresh()
		}
		return m, listenForConfig(m.configChan)
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.Settings.Open {
		return m.handleSettingsKey(msg)
	}

	switch msg.String() {
	case "ctrl+o":
		m.openSettings()
		return m, nil
	case "tab":
		if m.state.Focus == models.FocusInput && len(m.state.FilterOptions) > 0 {
			m.state.Focus = models.FocusFilters
			m.state.Input.Blur()
			return m, nil
		}
		m.state.Focus = models.FocusInput
		cmd := m.state.Input.Focus()
		return m, cmd
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	if m.state.Focus == models.FocusFilters {
		return m.handleFilterKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// submit hands the input line to the session
func (m BubbleTeaModel) submit() (tea.Model, tea.Cmd) {
	if m.state.Busy() {
		return m, nil
	}

	action, err := m.session.Submit(m.state.Input.Value())
	if err != nil {
		if errors.Is(err, session.ErrEmptyInput) {
			m.state.Input.SetValue("")
		}
		return m, nil
	}

	m.state.Input.SetValue("")
	m.refresh()

	switch a := action.(type) {
	case session.LocalAction:
		command := a.Command
		return m, tea.Tick(a.Delay, func(time.Time) tea.Msg {
			return localDoneMsg{command: command}
		})
	case session.SearchAction:
		return m, m.runSearch(a.Pending)
	}
	return m, nil
}

// handleFilterKey handles keys while the filter bar has focus
func (m BubbleTeaModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.state.FilterIndex > 0 {
			m.state.FilterIndex--
		}
	case "right", "l":
		if m.state.FilterIndex < len(m.state.FilterOptions)-1 {
			m.state.FilterIndex++
		}
	case " ", "space", "enter":
		return m.toggleFilter()
	case "esc":
		m.state.Focus = models.FocusInput
		cmd := m.state.Input.Focus()
		return m, cmd
	}
	return m, nil
}

// toggleFilter toggles the tag under the cursor and replays the last search
func (m BubbleTeaModel) toggleFilter() (tea.Model, tea.Cmd) {
	if m.state.Busy() || m.state.FilterIndex >= len(m.state.FilterOptions) {
		return m, nil
	}

	pending, err := m.session.ToggleFilter(m.state.FilterOptions[m.state.FilterIndex])
	if err != nil {
		return m, nil
	}
	m.refresh()
	return m, m.runSearch(pending)
}

// handleSettingsKey handles keys while the settings panel is open
func (m BubbleTeaModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.state.Settings

	if p.Editing {
		switch msg.Type {
		case tea.KeyEnter:
			if field, ok := p.Selected(); ok && field.Text != nil {
				*field.Text(&p.Draft) = strings.TrimSpace(p.Editor.Value())
			}
			p.Editing = false
			p.Editor.Blur()
		case tea.KeyEsc:
			p.Editing = false
			p.Editor.Blur()
		default:
			var cmd tea.Cmd
			p.Editor, cmd = p.Editor.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if p.Index > 0 {
			p.Index--
		}
	case "down", "j":
		if p.Index < len(p.Fields)-1 {
			p.Index++
		}
	case "enter", " ", "space":
		cmd := m.editField()
		return m, cmd
	case "ctrl+s":
		m.saveSettings()
	case "esc":
		p.Open = false
		p.Error = ""
		cmd := m.state.Input.Focus()
		return m, cmd
	}
	return m, nil
}

// editField toggles, cycles or starts editing the selected field
func (m *BubbleTeaModel) editField() tea.Cmd {
	p := &m.state.Settings
	field, ok := p.Selected()
	if !ok {
		return nil
	}

	switch field.Kind {
	case models.FieldBool:
		flag := field.Flag(&p.Draft)
		*flag = !*flag
		return nil
	case models.FieldChoice:
		value := field.Text(&p.Draft)
		*value = nextChoice(field.Choices, *value)
		return nil
	}

	p.Editor.SetValue(*field.Text(&p.Draft))
	p.Editor.CursorEnd()
	p.Editor.EchoMode = textinput.EchoNormal
	if field.Kind == models.FieldSecret {
		p.Editor.EchoMode = textinput.EchoPassword
	}
	p.Editing = true
	return p.Editor.Focus()
}

// saveSettings persists the draft and applies it
func (m *BubbleTeaModel) saveSettings() {
	p := &m.state.Settings

	cfg, err := m.saver.Save(p.Draft)
	if err != nil {
		m.logger.Warn("failed to save settings", zap.Error(err))
		p.Error = "Failed to save settings: " + err.Error()
		return
	}

	m.store.Update(cfg)
	m.applyConfig(cfg)
	p.Open = false
	p.Error = ""
	m.state.Input.Focus()
	m.session.SettingsSaved()
	m.refresh()
}

// openSettings opens the panel on a draft of the current settings
func (m *BubbleTeaModel) openSettings() {
	p := &m.state.Settings
	p.Open = true
	p.Editing = false
	p.Error = ""
	p.Draft = m.store.Config().Settings
	m.state.Input.Blur()
}

// applyConfig applies the display parts of cfg
func (m *BubbleTeaModel) applyConfig(cfg *config.Config) {
	m.state.Theme = views.ResolveTheme(cfg.Settings.Theme, m.hasDarkBackground)
	if themed, ok := m.renderer.(interface{ SetDark(bool) }); ok {
		themed.SetDark(views.IsDark(m.state.Theme))
	}
	m.state.RootPath = cfg.Settings.FolderPaths.Root
	m.state.Markdown = cfg.UI.Markdown
	m.state.FilterOptions = append([]string(nil), cfg.UI.FilterOptions...)
	if m.state.FilterIndex >= len(m.state.FilterOptions) {
		m.state.FilterIndex = max(len(m.state.FilterOptions)-1, 0)
	}
	m.tickInterval = time.Duration(cfg.UI.TickIntervalMs) * time.Millisecond
}

// refresh takes a new snapshot and updates the viewport content
func (m *BubbleTeaModel) refresh() {
	m.state.Session = m.session.Snapshot()
	content := views.FormatHistory(m.state.Session.Entries, views.HistoryOptions{
		Width:    m.state.Viewport.Width - 4,
		DotCount: m.state.DotCount,
		Markdown: m.state.Markdown,
		Renderer: m.renderer,
		Styles:   views.StylesFor(m.state.Theme),
	})
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// runSearch calls the backend off the Update goroutine
func (m BubbleTeaModel) runSearch(p *session.PendingSearch) tea.Cmd {
	if p == nil {
		return nil
	}
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return searchDoneMsg(sess.RunSearch(ctx, p))
	}
}

func nextChoice(choices []string, current string) string {
	if len(choices) == 0 {
		return current
	}
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func listenForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func tick(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
