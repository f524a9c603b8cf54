package ui

import (
	"context"

	"github.com/Cyclone1070/termsearch/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// UI runs the interactive terminal using Bubble Tea
type UI struct {
	program *tea.Program

	// Watcher -> UI
	configChan chan *config.Config

	// Ready signal
	readyChan chan struct{}
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	ConfigChan chan *config.Config
	ReadyChan  chan struct{} // Closed when the UI is ready to accept updates
}

// NewUIChannels creates a new UIChannels struct with default buffers
func NewUIChannels() *UIChannels {
	return &UIChannels{
		ConfigChan: make(chan *config.Config, 1),
		ReadyChan:  make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI. The program stops when ctx is cancelled.
func NewUI(ctx context.Context, channels *UIChannels, deps ModelDeps, opts ...tea.ProgramOption) *UI {
	ui := &UI{
		configChan: channels.ConfigChan,
		readyChan:  channels.ReadyChan,
	}

	model := newBubbleTeaModel(ctx, ui.configChan, ui.readyChan, deps)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	ui.program = tea.NewProgram(model, opts...)

	return ui
}

// Start runs the UI program until the user quits
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// Quit stops the UI program
func (u *UI) Quit() {
	u.program.Quit()
}

// ApplyConfig hands a reloaded configuration to the UI
func (u *UI) ApplyConfig(ctx context.Context, cfg *config.Config) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case u.configChan <- cfg:
		return nil
	}
}

// Ready returns a channel that is closed when the UI is ready to accept updates
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}
