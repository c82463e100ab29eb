package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// InitialResultsAll and InitialResultsEmpty are the accepted values
// for Config.InitialResults.
const (
	InitialResultsAll   = "all"
	InitialResultsEmpty = "empty"
)

// Config holds application configuration.
type Config struct {
	// InitialResults controls what a fresh session shows before the
	// first search: "all" (the whole catalog) or "empty".
	InitialResults string `toml:"initial_results"`

	// LiveSearch reruns the search on every edit instead of waiting
	// for an explicit commit.
	LiveSearch bool `toml:"live_search"`

	// LabelsPath points to a JSON file overriding the built-in
	// English label table. Empty means defaults only.
	LabelsPath string `toml:"labels_path"`

	LinkCheck LinkCheckConfig `toml:"linkcheck"`
}

// LinkCheckConfig configures the listing URL health check.
type LinkCheckConfig struct {
	Concurrency    int      `toml:"concurrency"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	SkipDomains    []string `toml:"skip_domains"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		InitialResults: InitialResultsAll,
		LiveSearch:     false,
		LinkCheck: LinkCheckConfig{
			Concurrency:    8,
			TimeoutSeconds: 10,
			SkipDomains:    []string{},
		},
	}
}

// LoadConfig reads config from the TOML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Create the config file with defaults
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.InitialResults != InitialResultsAll && config.InitialResults != InitialResultsEmpty {
		config.InitialResults = defaults.InitialResults
	}
	if config.LinkCheck.Concurrency <= 0 {
		config.LinkCheck.Concurrency = defaults.LinkCheck.Concurrency
	}
	if config.LinkCheck.TimeoutSeconds <= 0 {
		config.LinkCheck.TimeoutSeconds = defaults.LinkCheck.TimeoutSeconds
	}
	if config.LinkCheck.SkipDomains == nil {
		config.LinkCheck.SkipDomains = defaults.LinkCheck.SkipDomains
	}

	return &config, nil
}

// SaveConfig writes config to the TOML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/pricedex/config.toml
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "pricedex", "config.toml"), nil
}
