// Package main provides the termsearch terminal client for the file-search
// backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/logging"
	"github.com/Cyclone1070/termsearch/internal/search"
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/Cyclone1070/termsearch/internal/ui"
	uiservices "github.com/Cyclone1070/termsearch/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// options are the command-line overrides.
type options struct {
	configPath string
	baseURL    string
	root       string
	logLevel   string
	logFile    string
	plain      bool
}

// Runner is the interactive UI as seen by main.
type Runner interface {
	Start() error
	Ready() <-chan struct{}
	ApplyConfig(ctx context.Context, cfg *config.Config) error
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config    *config.Config
	Store     *config.Store
	Logger    *zap.Logger
	Session   *session.Interpreter
	UIFactory func(context.Context) Runner

	// ConfigEvents and ConfigErrors come from the config file watcher. Both
	// are nil when the file is not watched.
	ConfigEvents <-chan *config.Config
	ConfigErrors <-chan error

	// Overrides reapplies command-line flags to a reloaded config.
	Overrides func(*config.Config)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "termsearch",
		Short:        "Terminal front-end for the file-search backend",
		Version:      session.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/termsearch/config.json)")
	flags.StringVar(&opts.baseURL, "base-url", "", "search backend base URL")
	flags.StringVar(&opts.root, "root", "", "root folder to search")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	flags.BoolVar(&opts.plain, "plain", false, "line mode on stdin/stdout instead of the full-screen UI")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	loader := config.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithPath(opts.configPath)
	}

	cfg, err := loadConfig(loader, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	logPath := defaultLogPath(loader)
	logger, err := logging.New(cfg.Logging, logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := config.NewStore(cfg)
	deps := &Dependencies{
		Config:    cfg,
		Store:     store,
		Logger:    logger,
		Session:   createSession(cfg, store, logger),
		Overrides: opts.apply,
	}
	deps.UIFactory = func(ctx context.Context) Runner {
		return createRealUI(ctx, deps, &settingsSaver{loader: loader, opts: opts})
	}

	watcher, err := config.NewWatcher(loader)
	if err != nil {
		logger.Warn("config file will not be watched", zap.Error(err))
	} else {
		watcher.Start()
		defer func() { _ = watcher.Stop() }()
		deps.ConfigEvents = watcher.Events
		deps.ConfigErrors = watcher.Errors
	}

	logger.Info("starting",
		zap.String("version", session.Version),
		zap.String("base_url", cfg.Backend.BaseURL),
		zap.Bool("plain", opts.plain))

	if opts.plain {
		return runPlain(cmd.Context(), cmd, deps)
	}
	return runInteractive(cmd.Context(), deps)
}

// loadConfig loads the config file and applies the flag overrides. A broken
// config file falls back to defaults with a warning.
func loadConfig(loader *config.Loader, opts *options, stderr io.Writer) (*config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command-line options: %w", err)
	}
	return cfg, nil
}

// apply copies the flags that were set onto cfg.
func (o *options) apply(cfg *config.Config) {
	if o.baseURL != "" {
		cfg.Backend.BaseURL = o.baseURL
	}
	if o.root != "" {
		cfg.Settings.FolderPaths.Root = o.root
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
}

// settingsSaver writes edited settings to the config file without the flag
// overrides, then returns the config with the overrides applied again.
type settingsSaver struct {
	loader *config.Loader
	opts   *options
}

func (s *settingsSaver) Save(settings config.Settings) (*config.Config, error) {
	if s.opts.root != "" && settings.FolderPaths.Root == s.opts.root {
		// --root put this value in the draft; keep what the file has
		fileCfg, err := s.loader.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to read config before saving: %w", err)
		}
		settings.FolderPaths.Root = fileCfg.Settings.FolderPaths.Root
	}

	cfg, err := s.loader.SaveSettings(settings)
	if err != nil {
		return nil, err
	}
	s.opts.apply(cfg)
	return cfg, nil
}

func defaultLogPath(loader *config.Loader) string {
	dir, err := loader.Dir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, config.LogFile)
}

func createSession(cfg *config.Config, store *config.Store, logger *zap.Logger) *session.Interpreter {
	client := search.NewHTTPClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutMs)*time.Millisecond,
		logger.Named("search"),
	)
	delay := time.Duration(cfg.UI.CommandDelayMs) * time.Millisecond
	return session.NewInterpreter(session.NewState(), client, store, logger.Named("session"), delay)
}

func createRealUI(ctx context.Context, deps *Dependencies, saver ui.SettingsSaver) Runner {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer(true)
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(ctx, channels, ui.ModelDeps{
		Session:           deps.Session,
		Store:             deps.Store,
		Saver:             saver,
		Renderer:          renderer,
		SpinnerFactory:    spinnerFactory,
		Logger:            deps.Logger.Named("ui"),
		HasDarkBackground: lipgloss.HasDarkBackground,
	})
}

// runInteractive runs the full-screen UI and forwards config reloads to it
// until the user quits or ctx is cancelled.
func runInteractive(ctx context.Context, deps *Dependencies) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	userInterface := deps.UIFactory(gctx)

	g.Go(func() error {
		// UI exited, trigger shutdown
		defer cancel()
		err := userInterface.Start()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error running UI: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-userInterface.Ready():
		case <-gctx.Done():
			return nil
		}
		return forwardConfig(gctx, deps, func(cfg *config.Config) error {
			return userInterface.ApplyConfig(gctx, cfg)
		})
	})

	return g.Wait()
}

// runPlain runs line mode and keeps the settings store in sync with the
// config file.
func runPlain(ctx context.Context, cmd *cobra.Command, deps *Dependencies) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := ui.RunPlain(gctx, cmd.InOrStdin(), cmd.OutOrStdout(), deps.Session)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		return forwardConfig(gctx, deps, func(cfg *config.Config) error {
			deps.Store.Update(cfg)
			return nil
		})
	})

	return g.Wait()
}

// forwardConfig hands every reloaded config to apply until ctx is done.
// Reload errors are logged and the previous config stays in effect.
func forwardConfig(ctx context.Context, deps *Dependencies, apply func(*config.Config) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-deps.ConfigEvents:
			if !ok {
				return nil
			}
			if deps.Overrides != nil {
				deps.Overrides(cfg)
			}
			deps.Logger.Info("config reloaded")
			if err := apply(cfg); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case err := <-deps.ConfigErrors:
			deps.Logger.Warn("config reload failed", zap.Error(err))
		}
	}
}
