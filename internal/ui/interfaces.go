package ui

import (
	"context"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/session"
)

// Session is the interpreter as seen by the interactive UI.
//
// All methods except RunSearch mutate session state and are only called from
// the Bubble Tea Update goroutine. RunSearch runs inside a tea.Cmd.
type Session interface {
	Submit(input string) (session.Action, error)
	Apply(cmd session.Command)
	RunSearch(ctx context.Context, p *session.PendingSearch) session.SearchResult
	CompleteSearch(r session.SearchResult)
	ToggleFilter(tag string) (*session.PendingSearch, error)
	Snapshot() session.Snapshot
	Notify(message string)
	NotifyError(message string)
	SettingsSaved()
}

// LineSession is the interpreter as seen by plain line mode.
type LineSession interface {
	Execute(ctx context.Context, input string) error
	Snapshot() session.Snapshot
}

// SettingsStore holds the live configuration
type SettingsStore interface {
	Config() *config.Config
	Update(cfg *config.Config)
}

// SettingsSaver persists edited settings and returns the config that is
// now in effect.
type SettingsSaver interface {
	Save(settings config.Settings) (*config.Config, error)
}
