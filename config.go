package chanlog

import (
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Channels enabled when the configuration does not name any.
var DefaultChannels = []string{"meta", "startup"}

// Config defines the logger configuration parameters.
// All fields except Output can be configured via JSON, TOML or YAML files.
type Config struct {
	Channels     []string  `json:"channels" toml:"channels" yaml:"channels"`                // Channels enabled at start, nil means DefaultChannels
	ShouldWrite  bool      `json:"should_write" toml:"should_write" yaml:"should_write"`    // Initial state of the flush flag
	ScreenHeader string    `json:"screen_header" toml:"screen_header" yaml:"screen_header"` // First line of the screen buffer
	FullHeader   string    `json:"full_header" toml:"full_header" yaml:"full_header"`       // First line of the full buffer
	Output       io.Writer `json:"-" toml:"-" yaml:"-"`                                     // Flush destination, os.Stdout when nil
}

// mergeConfig fills the zero fields of the first config with defaults.
func mergeConfig(cfg ...*Config) Config {
	defaultConfig := Config{
		Channels:     DefaultChannels,
		ShouldWrite:  false,
		ScreenHeader: ScreenHeader,
		FullHeader:   FullHeader,
	}

	if len(cfg) == 0 || cfg[0] == nil {
		return defaultConfig
	}

	userConfig := cfg[0]
	merged := Config{
		Channels:     defaultConfig.Channels,
		ShouldWrite:  userConfig.ShouldWrite,
		ScreenHeader: getConfigValue(defaultConfig.ScreenHeader, userConfig.ScreenHeader),
		FullHeader:   getConfigValue(defaultConfig.FullHeader, userConfig.FullHeader),
		Output:       userConfig.Output,
	}
	// an empty, non-nil list disables every channel
	if userConfig.Channels != nil {
		merged.Channels = append([]string(nil), userConfig.Channels...)
	}
	return merged
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads a YAML configuration file. The path may contain ~ and
// environment variable references.
func LoadConfig(path string) (*Config, error) {
	fullPath, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", fullPath)
	}
	return cfg, nil
}

// Configure replaces the default logger with a new one built from cfg.
// Previously buffered lines are discarded.
func Configure(cfg *Config) {
	SetDefault(New(cfg))
}

// expandPath resolves environment variables first, then a leading ~.
func expandPath(path string) (string, error) {
	fullPath, err := homedir.Expand(os.ExpandEnv(path))
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand path %q", path)
	}
	return fullPath, nil
}
