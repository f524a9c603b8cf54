package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Themes lists the accepted settings.theme values.
var Themes = []string{"system", "dark", "light", "mocha", "macchiato", "frappe", "latte"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks config values for life correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Settings validation
	if !slices.Contains(Themes, c.Settings.Theme) {
		errs = append(errs, fmt.Sprintf("settings.theme must be one of %s", strings.Join(Themes, ", ")))
	}

	// Backend validation
	if c.Backend.BaseURL == "" {
		errs = append(errs, "backend.base_url must not be empty")
	} else if u, err := url.Parse(c.Backend.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, "backend.base_url must be an absolute http(s) URL")
	}
	if c.Backend.TimeoutMs < 1 {
		errs = append(errs, "backend.timeout_ms must be >= 1")
	}

	// UI validation
	if c.UI.CommandDelayMs < 0 {
		errs = append(errs, "ui.command_delay_ms must be >= 0")
	}
	if c.UI.TickIntervalMs < 1 {
		errs = append(errs, "ui.tick_interval_ms must be >= 1")
	}
	for i, opt := range c.UI.FilterOptions {
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, fmt.Sprintf("ui.filter_options[%d] must not be empty", i))
		}
	}

	// Logging validation
	if !slices.Contains(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(logLevels, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
