package models

import (
	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/Cyclone1070/termsearch/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Focus is the component receiving key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusFilters
)

// State holds the UI state
type State struct {
	Width  int
	Height int

	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model
	DotCount int

	// Session is the last snapshot taken from the interpreter.
	Session session.Snapshot

	Focus         Focus
	FilterOptions []string
	FilterIndex   int

	Settings SettingsPanel

	Theme    string // resolved flavour name, never "system"
	RootPath string
	Markdown bool
}

// Busy reports whether the session is waiting on a command or search.
func (s State) Busy() bool {
	return s.Session.InFlight || s.Session.Processing
}

// FieldKind controls how a settings field is edited.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSecret
	FieldBool
	FieldChoice
)

// SettingsField describes one editable row of the settings panel.
type SettingsField struct {
	Label   string
	Kind    FieldKind
	Choices []string

	// Text points at the string backing a text, secret or choice field.
	Text func(*config.Settings) *string
	// Flag points at the bool backing a bool field.
	Flag func(*config.Settings) *bool
}

// SettingsPanel is the in-place settings editor.
type SettingsPanel struct {
	Open    bool
	Fields  []SettingsField
	Index   int
	Editing bool
	Editor  textinput.Model
	Draft   config.Settings
	Error   string
}

// Selected returns the highlighted field.
func (p SettingsPanel) Selected() (SettingsField, bool) {
	if p.Index < 0 || p.Index >= len(p.Fields) {
		return SettingsField{}, false
	}
	return p.Fields[p.Index], true
}

// SettingsFields lists the editable settings in display order.
func SettingsFields() []SettingsField {
	return []SettingsField{
		{Label: "API Key", Kind: FieldSecret, Text: func(s *config.Settings) *string { return &s.APIKey }},
		{Label: "Theme", Kind: FieldChoice, Choices: config.Themes, Text: func(s *config.Settings) *string { return &s.Theme }},
		{Label: "Language", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.Language }},
		{Label: "Root Folder", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.FolderPaths.Root }},
		{Label: "Documents Folder", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.FolderPaths.Documents }},
		{Label: "Images Folder", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.FolderPaths.Images }},
		{Label: "Downloads Folder", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.FolderPaths.Downloads }},
		{Label: "Other Folder", Kind: FieldText, Text: func(s *config.Settings) *string { return &s.FolderPaths.Other }},
		{Label: "Show code when using data analyst", Kind: FieldBool, Flag: func(s *config.Settings) *bool { return &s.Preferences.ShowCodeWhenUsingDataAnalyst }},
		{Label: "Show follow-up suggestions", Kind: FieldBool, Flag: func(s *config.Settings) *bool { return &s.Preferences.ShowFollowUpSuggestions }},
		{Label: "Archive chats", Kind: FieldBool, Flag: func(s *config.Settings) *bool { return &s.Preferences.ArchiveChats }},
	}
}
