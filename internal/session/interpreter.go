package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/search"
	"go.uber.org/zap"
)

// SettingsSource provides the settings in effect when a search starts.
type SettingsSource interface {
	Current() config.Settings
}

// Action tells the caller what remains to be done after Submit.
type Action interface {
	isAction()
}

// LocalAction must be completed by calling Apply(Command) after Delay.
type LocalAction struct {
	Command Command
	Delay   time.Duration
}

// SearchAction must be completed by RunSearch followed by CompleteSearch.
type SearchAction struct {
	Pending *PendingSearch
}

func (LocalAction) isAction()  {}
func (SearchAction) isAction() {}

// PendingSearch is a dispatched search waiting for its result. It owns the
// placeholder entry identified by PlaceholderID.
type PendingSearch struct {
	PlaceholderID string
	Mode          search.Mode
	Request       search.Request
}

// SearchResult is the outcome of RunSearch.
type SearchResult struct {
	Pending  *PendingSearch
	Response *search.Response
	Err      error
	Elapsed  time.Duration
}

// Interpreter classifies input and applies it to a State.
// All methods except RunSearch mutate the state and must be called from a
// single goroutine.
type Interpreter struct {
	state    *State
	searcher search.Searcher
	settings SettingsSource
	logger   *zap.Logger
	delay    time.Duration
}

// NewInterpreter creates an interpreter over state. delay is how long local
// commands take before their result is applied.
func NewInterpreter(state *State, searcher search.Searcher, settings SettingsSource, logger *zap.Logger, delay time.Duration) *Interpreter {
	if state == nil {
		state = NewState()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{
		state:    state,
		searcher: searcher,
		settings: settings,
		logger:   logger,
		delay:    delay,
	}
}

// State returns the underlying state.
func (i *Interpreter) State() *State {
	return i.state
}

// Snapshot returns a read-only copy of the state.
func (i *Interpreter) Snapshot() Snapshot {
	return i.state.Snapshot()
}

// Submit records input in the history and classifies it. Searches are begun
// immediately; local commands are returned for the caller to Apply after the
// delay. Blank input returns ErrEmptyInput without touching the state.
func (i *Interpreter) Submit(input string) (Action, error) {
	cmd, err := Classify(input)
	if err != nil {
		return nil, err
	}
	if i.state.InFlight {
		return nil, ErrSearchInFlight
	}

	i.logger.Debug("command classified",
		zap.String("input", input),
		zap.String("command", commandName(cmd)))

	i.state.History.Append(NewUserEntry(input))

	if sc, ok := cmd.(SearchCommand); ok {
		i.state.PendingInput = ""
		pending, err := i.BeginSearch(sc.Query, i.state.Filters, sc.Mode)
		if err != nil {
			return nil, err
		}
		return SearchAction{Pending: pending}, nil
	}

	i.state.PendingInput = input
	i.state.Processing = true
	return LocalAction{Command: cmd, Delay: i.delay}, nil
}

// Apply performs a local command and clears the processing state.
func (i *Interpreter) Apply(cmd Command) {
	defer func() {
		i.state.Processing = false
		i.state.PendingInput = ""
	}()

	h := i.state.History
	switch c := cmd.(type) {
	case HelpCommand:
		entry := NewSystemEntry(helpText)
		entry.Markdown = true
		h.Append(entry)
	case ClearCommand:
		h.Reset(SeedEntries()...)
	case KeywordsCommand:
		h.Append(NewSystemEntry(keywordsMessage(i.state.Keywords)))
	case SettingsCommand:
		h.Append(NewSystemEntry(settingsHint))
	case FilterCommand:
		filters, event := i.state.Filters.Toggle(c.Tag)
		i.state.Filters = filters
		h.Append(NewSystemEntry(event.Message()))
	case ListFiltersCommand:
		h.Append(NewSystemEntry(activeFiltersMessage(i.state.Filters)))
	case UnrecognizedCommand:
		h.Append(NewSystemEntry(unrecognizedMessage(c.Input)))
	case SearchCommand:
		// Begun by Submit.
	}
}

// Execute runs input to completion: local commands wait out the delay and
// searches block on the backend.
func (i *Interpreter) Execute(ctx context.Context, input string) error {
	action, err := i.Submit(input)
	if err != nil {
		return err
	}

	switch a := action.(type) {
	case LocalAction:
		if a.Delay > 0 {
			timer := time.NewTimer(a.Delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
			}
		}
		i.Apply(a.Command)
		return ctx.Err()
	case SearchAction:
		i.CompleteSearch(i.RunSearch(ctx, a.Pending))
	}
	return nil
}

// Dispatch searches for query synchronously. Backend failures end up in the
// history; only a refused dispatch is returned as an error.
func (i *Interpreter) Dispatch(ctx context.Context, query string, filters FilterSet, mode search.Mode) error {
	pending, err := i.BeginSearch(query, filters, mode)
	if err != nil {
		return err
	}
	i.CompleteSearch(i.RunSearch(ctx, pending))
	return nil
}

// BeginSearch appends the loading placeholder and marks the search in flight.
func (i *Interpreter) BeginSearch(query string, filters FilterSet, mode search.Mode) (*PendingSearch, error) {
	if i.state.InFlight {
		return nil, ErrSearchInFlight
	}

	var settings config.Settings
	if i.settings != nil {
		settings = i.settings.Current()
	}

	tags := filters.Tags()
	placeholder := NewLoadingEntry(searchingMessage(query, tags))
	i.state.History.Append(placeholder)
	i.state.InFlight = true

	i.logger.Info("search dispatched",
		zap.String("mode", string(mode)),
		zap.String("query", query),
		zap.Strings("filters", tags))

	return &PendingSearch{
		PlaceholderID: placeholder.ID,
		Mode:          mode,
		Request: search.Request{
			Query:    query,
			BasePath: search.EscapeBasePath(settings.FolderPaths.Root),
			Filters:  tags,
			Token:    settings.APIKey,
		},
	}, nil
}

// RunSearch calls the backend. It does not touch the state and may run on
// any goroutine.
func (i *Interpreter) RunSearch(ctx context.Context, p *PendingSearch) SearchResult {
	if _, err := p.Mode.Endpoint(); err != nil {
		return SearchResult{Pending: p, Err: err}
	}

	start := time.Now()
	resp, err := i.searcher.Search(ctx, p.Mode, p.Request)
	if err == nil && resp == nil {
		err = &search.MalformedResponseError{Endpoint: string(p.Mode), Cause: errors.New("empty response")}
	}
	return SearchResult{Pending: p, Response: resp, Err: err, Elapsed: time.Since(start)}
}

// CompleteSearch swaps the placeholder for the final entries and releases the
// in-flight flag. Keywords are only updated by a successful search.
func (i *Interpreter) CompleteSearch(r SearchResult) {
	defer func() { i.state.InFlight = false }()

	p := r.Pending
	var entries []Entry
	if r.Err != nil {
		i.logger.Warn("search failed",
			zap.String("mode", string(p.Mode)),
			zap.String("query", p.Request.Query),
			zap.Duration("elapsed", r.Elapsed),
			zap.Error(r.Err))
		entries = []Entry{NewErrorEntry(searchErrorMessage(p.Request.Query, r.Err))}
	} else {
		keywords := append([]string{}, r.Response.Keywords...)
		i.state.Keywords = keywords
		i.logger.Info("search completed",
			zap.String("mode", string(p.Mode)),
			zap.Int("results", len(r.Response.Results)),
			zap.Duration("elapsed", r.Elapsed))
		entries = []Entry{
			NewSystemEntry(resultsMessage(p.Request.Query)),
			NewResultsEntry(r.Response.Results, keywords),
		}
	}

	if !i.state.History.Replace(p.PlaceholderID, entries...) {
		i.state.History.Append(entries...)
	}
}

// ToggleFilter toggles tag from the filter bar and replays the most recent
// search with the new filters. It returns the replayed search, or nil when
// there is nothing to replay.
func (i *Interpreter) ToggleFilter(tag string) (*PendingSearch, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyInput
	}
	if i.state.InFlight {
		return nil, ErrSearchInFlight
	}

	filters, event := i.state.Filters.Toggle(tag)
	i.state.Filters = filters
	i.state.History.Append(NewSystemEntry(event.Message()))

	last, ok := LastSearch(i.state.History.Entries())
	if !ok {
		return nil, nil
	}
	query := strings.TrimSpace(last.Query)
	if query == "" {
		return nil, nil
	}

	i.logger.Debug("replaying search", zap.String("query", query), zap.String("mode", string(last.Mode)))
	return i.BeginSearch(query, filters, last.Mode)
}

// Notify appends a plain system message.
func (i *Interpreter) Notify(message string) {
	i.state.History.Append(NewSystemEntry(message))
}

// NotifyError appends a system message flagged as an error.
func (i *Interpreter) NotifyError(message string) {
	i.state.History.Append(NewErrorEntry(message))
}

// SettingsSaved reports a successful settings save.
func (i *Interpreter) SettingsSaved() {
	i.Notify(settingsSaved)
}

func commandName(cmd Command) string {
	switch c := cmd.(type) {
	case SearchCommand:
		return string(c.Mode)
	case HelpCommand:
		return "help"
	case ClearCommand:
		return "clear"
	case KeywordsCommand:
		return "keywords"
	case SettingsCommand:
		return "settings"
	case FilterCommand:
		return "filter"
	case ListFiltersCommand:
		return "filters"
	case UnrecognizedCommand:
		return "unrecognized"
	default:
		return fmt.Sprintf("%T", cmd)
	}
}
