package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Settings Settings      `json:"settings"`
	Backend  BackendConfig `json:"backend"`
	UI       UIConfig      `json:"ui"`
	Logging  LoggingConfig `json:"logging"`
}

// Settings is the user-editable application settings record.
// The session only reads FolderPaths.Root and APIKey.
type Settings struct {
	APIKey      string      `json:"api_key"`
	Theme       string      `json:"theme"` // system, dark, light, mocha, macchiato, frappe, latte
	FolderPaths FolderPaths `json:"folder_paths"`
	Preferences Preferences `json:"preferences"`
	Language    string      `json:"language"`
}

type FolderPaths struct {
	Documents string `json:"documents"`
	Root      string `json:"root"`
	Images    string `json:"images"`
	Downloads string `json:"downloads"`
	Other     string `json:"other"`
}

type Preferences struct {
	ShowCodeWhenUsingDataAnalyst bool `json:"show_code_when_using_data_analyst"`
	ShowFollowUpSuggestions      bool `json:"show_follow_up_suggestions"`
	ArchiveChats                 bool `json:"archive_chats"`
}

type BackendConfig struct {
	BaseURL   string `json:"base_url"`   // Default: http://127.0.0.1:8000
	TimeoutMs int    `json:"timeout_ms"` // Default: 30000
}

type UIConfig struct {
	CommandDelayMs int      `json:"command_delay_ms"` // Default: 300
	TickIntervalMs int      `json:"tick_interval_ms"` // Default: 300
	FilterOptions  []string `json:"filter_options"`
	Markdown       bool     `json:"markdown"` // Render help and notices through glamour
}

type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	File  string `json:"file"`  // Default: ~/.config/termsearch/termsearch.log
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			Theme:    "system",
			Language: "auto-detect",
			Preferences: Preferences{
				ShowCodeWhenUsingDataAnalyst: true,
				ShowFollowUpSuggestions:      true,
				ArchiveChats:                 false,
			},
		},
		Backend: BackendConfig{
			BaseURL:   "http://127.0.0.1:8000",
			TimeoutMs: 30000,
		},
		UI: UIConfig{
			CommandDelayMs: 300,
			TickIntervalMs: 300,
			FilterOptions:  []string{"file", "folder", "pdf", "image", "document", "code"},
			Markdown:       true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	out := *c
	out.UI.FilterOptions = append([]string(nil), c.UI.FilterOptions...)
	return &out
}
