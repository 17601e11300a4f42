package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version  int        `toml:"version"`
	UI       UISettings `toml:"ui"`
	Matching Matching   `toml:"matching"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Prompt       string `toml:"prompt"`
	Pointer      string `toml:"pointer"`
	Marker       string `toml:"marker"`
	PointerColor string `toml:"pointer_color"`
	MarkerColor  string `toml:"marker_color"`
	CurrentColor string `toml:"current_color"`
}

// Matching represents match-behavior configuration
type Matching struct {
	Exact bool `toml:"exact"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	fuzzpickDir := filepath.Join(configDir, "fuzzpick")
	os.MkdirAll(fuzzpickDir, 0755)

	return &configService{
		filePath: filepath.Join(fuzzpickDir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Backfill unset glyphs and colors
	cfg.applyDefaults()

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Prompt:       "",
			Pointer:      ">",
			Marker:       "*",
			PointerColor: "1",
			MarkerColor:  "3",
			CurrentColor: "6",
		},
		Matching: Matching{
			Exact: false,
		},
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.UI.Pointer == "" {
		c.UI.Pointer = def.UI.Pointer
	}
	if c.UI.Marker == "" {
		c.UI.Marker = def.UI.Marker
	}
	if c.UI.PointerColor == "" {
		c.UI.PointerColor = def.UI.PointerColor
	}
	if c.UI.MarkerColor == "" {
		c.UI.MarkerColor = def.UI.MarkerColor
	}
	if c.UI.CurrentColor == "" {
		c.UI.CurrentColor = def.UI.CurrentColor
	}
}
