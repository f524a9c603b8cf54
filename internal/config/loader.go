package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "termsearch"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// LogFile is the default log file name inside ConfigDir
	LogFile = "termsearch.log"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (ConfigFileReader) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (ConfigFileReader) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs   FileSystem
	path string // explicit path; empty means ~/.config/termsearch/config.json
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// WithPath makes the loader read and write path instead of the default location.
func (l *Loader) WithPath(path string) *Loader {
	l.path = path
	return l
}

// Path returns the config file location.
func (l *Loader) Path() (string, error) {
	if l.path != "" {
		return l.path, nil
	}
	dir, err := l.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Dir returns the directory holding the config file and the default log file.
func (l *Loader) Dir() (string, error) {
	if l.path != "" {
		return filepath.Dir(l.path), nil
	}
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", ConfigDir), nil
}

// Load reads the config file and merges it with defaults. Dotfile values
// override defaults. Returns default config if the dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath, err := l.Path()
	if err != nil {
		return cfg, nil // Use defaults if can't get home dir
	}

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, err // Return error for permission issues
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err // Return error for malformed JSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save validates cfg and writes it to the config file, creating parent
// directories as needed. The file holds the API key, so it is private to the user.
func (l *Loader) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath, err := l.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := l.fs.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := l.fs.WriteFile(configPath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}

// SaveSettings replaces the settings section of the config file and leaves
// every other section as it is on disk. It returns the config it wrote.
func (l *Loader) SaveSettings(settings Settings) (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read config before saving: %w", err)
	}
	cfg.Settings = settings
	if err := l.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
