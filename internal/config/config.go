package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the optional per-project config file
const FileName = ".scriptpick.toml"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Runner     string     `toml:"runner"`   // command line; the script name is appended
	Manifest   string     `toml:"manifest"` // manifest file name in the working directory
	LogFile    string     `toml:"log_file"` // empty disables logging
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCommands *bool `toml:"show_commands"`
	ShowHelp     *bool `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading FileName from dir
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// Load loads the configuration, falling back to defaults when the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// ShowCommandsEnabled reports whether the command column is drawn
func (u UISettings) ShowCommandsEnabled() bool {
	return u.ShowCommands == nil || *u.ShowCommands
}

// ShowHelpEnabled reports whether the help line is drawn
func (u UISettings) ShowHelpEnabled() bool {
	return u.ShowHelp == nil || *u.ShowHelp
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Runner == "" {
		c.Runner = def.Runner
	}
	if c.Manifest == "" {
		c.Manifest = def.Manifest
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Runner:   "yarn",
		Manifest: "package.json",
	}
}
