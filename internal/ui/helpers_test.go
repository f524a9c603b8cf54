package ui

import (
	"context"
	"sync"
	"testing"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/search"
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"
)

// Mock dependencies
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
	Dark       *bool
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func (m *MockMarkdownRenderer) SetDark(dark bool) {
	m.Dark = &dark
}

type MockSearcher struct {
	mu    sync.Mutex
	Calls []search.Request
	Resp  *search.Response
	Err   error
}

func (m *MockSearcher) Search(_ context.Context, _ search.Mode, req search.Request) (*search.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	return m.Resp, m.Err
}

// MockSaver records saved settings and returns Effective with them applied.
type MockSaver struct {
	Saved     []config.Settings
	Effective *config.Config
	Err       error
}

func (m *MockSaver) Save(settings config.Settings) (*config.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Saved = append(m.Saved, settings)
	cfg := config.DefaultConfig()
	if m.Effective != nil {
		cfg = m.Effective.Clone()
	}
	cfg.Settings = settings
	return cfg, nil
}

func mockSpinnerFactory() spinner.Model {
	return spinner.New()
}

type testEnv struct {
	searcher *MockSearcher
	store    *config.Store
	saver    *MockSaver
	renderer *MockMarkdownRenderer
	interp   *session.Interpreter
	channels *UIChannels
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := config.NewStore(config.DefaultConfig())
	searcher := &MockSearcher{Resp: &search.Response{
		Results:  []search.FileResult{{Name: "report.pdf", Path: "/docs/report.pdf"}},
		Keywords: []string{"report"},
	}}
	return &testEnv{
		searcher: searcher,
		store:    store,
		saver:    &MockSaver{},
		renderer: &MockMarkdownRenderer{},
		interp:   session.NewInterpreter(session.NewState(), searcher, store, zap.NewNop(), 0),
		channels: NewUIChannels(),
	}
}

func (e *testEnv) deps() ModelDeps {
	return ModelDeps{
		Session:           e.interp,
		Store:             e.store,
		Saver:             e.saver,
		Renderer:          e.renderer,
		SpinnerFactory:    mockSpinnerFactory,
		Logger:            zap.NewNop(),
		HasDarkBackground: func() bool { return true },
	}
}

func (e *testEnv) model() BubbleTeaModel {
	return newBubbleTeaModel(context.Background(), e.channels.ConfigChan, e.channels.ReadyChan, e.deps())
}

func lastSystem(entries []session.Entry) session.SystemEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if s, ok := entries[i].(session.SystemEntry); ok {
			return s
		}
	}
	return session.SystemEntry{}
}
