package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRunner struct {
	ready   chan struct{}
	applied chan *config.Config
	quit    chan struct{}
	err     error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		ready:   make(chan struct{}),
		applied: make(chan *config.Config, 10),
		quit:    make(chan struct{}),
	}
}

func (f *fakeRunner) Start() error {
	close(f.ready)
	<-f.quit
	return f.err
}

func (f *fakeRunner) Ready() <-chan struct{} { return f.ready }

func (f *fakeRunner) ApplyConfig(_ context.Context, cfg *config.Config) error {
	f.applied <- cfg
	return nil
}

func testDeps(runner *fakeRunner, events chan *config.Config, errs chan error) *Dependencies {
	cfg := config.DefaultConfig()
	store := config.NewStore(cfg)
	opts := &options{root: "/forced"}
	return &Dependencies{
		Config:       cfg,
		Store:        store,
		Logger:       zap.NewNop(),
		Session:      session.NewInterpreter(nil, nil, store, nil, 0),
		UIFactory:    func(context.Context) Runner { return runner },
		ConfigEvents: events,
		ConfigErrors: errs,
		Overrides:    opts.apply,
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := &options{baseURL: "http://search:9000", root: "/data", logLevel: "debug", logFile: "/tmp/x.log"}

	opts.apply(cfg)

	assert.Equal(t, "http://search:9000", cfg.Backend.BaseURL)
	assert.Equal(t, "/data", cfg.Settings.FolderPaths.Root)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)

	unchanged := config.DefaultConfig()
	(&options{}).apply(unchanged)
	assert.Equal(t, config.DefaultConfig(), unchanged)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"settings":{"api_key":"k"},"ui":{"command_delay_ms":0}}`), 0o600))

	var stderr bytes.Buffer
	cfg, err := loadConfig(config.NewLoader().WithPath(path), &options{root: "/r"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.Settings.APIKey)
	assert.Equal(t, 0, cfg.UI.CommandDelayMs)
	assert.Equal(t, "/r", cfg.Settings.FolderPaths.Root)
	assert.Empty(t, stderr.String())
}

func TestLoadConfig_BrokenFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	var stderr bytes.Buffer
	cfg, err := loadConfig(config.NewLoader().WithPath(path), &options{}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Contains(t, stderr.String(), "Using default configuration.")
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := loadConfig(config.NewLoader().WithPath(path), &options{logLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestSettingsSaver_KeepsFlagOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"settings":{"folder_paths":{"root":"/home/me"}},"backend":{"base_url":"http://127.0.0.1:8000"}}`), 0o600))
	loader := config.NewLoader().WithPath(path)
	opts := &options{baseURL: "http://10.0.0.9:9000", root: "/tmp/override", logLevel: "debug"}

	cfg, err := loadConfig(loader, opts, &bytes.Buffer{})
	require.NoError(t, err)
	draft := cfg.Settings
	draft.Theme = "light"

	saver := &settingsSaver{loader: loader, opts: opts}
	effective, err := saver.Save(draft)
	require.NoError(t, err)

	onDisk, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", onDisk.Settings.Theme)
	assert.Equal(t, "/home/me", onDisk.Settings.FolderPaths.Root)
	assert.Equal(t, "http://127.0.0.1:8000", onDisk.Backend.BaseURL)
	assert.Equal(t, "info", onDisk.Logging.Level)

	assert.Equal(t, "light", effective.Settings.Theme)
	assert.Equal(t, "/tmp/override", effective.Settings.FolderPaths.Root)
	assert.Equal(t, "http://10.0.0.9:9000", effective.Backend.BaseURL)
	assert.Equal(t, "debug", effective.Logging.Level)
}

func TestSettingsSaver_EditedRootIsWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	loader := config.NewLoader().WithPath(path)
	opts := &options{root: "/tmp/override"}

	draft := config.DefaultConfig().Settings
	draft.FolderPaths.Root = "/srv/files"
	_, err := (&settingsSaver{loader: loader, opts: opts}).Save(draft)
	require.NoError(t, err)

	onDisk, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/files", onDisk.Settings.FolderPaths.Root)
}

func TestRunInteractive_ForwardsReloads(t *testing.T) {
	runner := newFakeRunner()
	events := make(chan *config.Config, 1)
	errs := make(chan error, 1)
	deps := testDeps(runner, events, errs)

	done := make(chan error, 1)
	go func() { done <- runInteractive(context.Background(), deps) }()

	errs <- errors.New("bad file")
	events <- config.DefaultConfig()

	select {
	case cfg := <-runner.applied:
		assert.Equal(t, "/forced", cfg.Settings.FolderPaths.Root)
	case <-time.After(time.Second):
		t.Fatal("config was not forwarded")
	}

	close(runner.quit)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runInteractive did not return after the UI exited")
	}
}

func TestRunInteractive_UIError(t *testing.T) {
	runner := newFakeRunner()
	runner.err = errors.New("no tty")
	close(runner.quit)

	err := runInteractive(context.Background(), testDeps(runner, nil, nil))

	assert.ErrorContains(t, err, "no tty")
}

func TestRootCmd_PlainMode(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--plain",
		"--config", filepath.Join(dir, "config.json"),
		"--log-file", filepath.Join(dir, "termsearch.log"),
	})
	cmd.SetIn(strings.NewReader("help\nfilter pdf\nfilter \n"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Welcome v1.0.0")
	assert.Contains(t, text, "Available commands")
	assert.Contains(t, text, "Added filter: pdf")
	assert.Contains(t, text, "Active filters: pdf")

	logData, err := os.ReadFile(filepath.Join(dir, "termsearch.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "starting")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
