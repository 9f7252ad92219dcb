package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Author store backends
const (
	AuthorStoreSQLite = "sqlite"
	AuthorStoreFile   = "file"
	AuthorStoreMemory = "memory"
	AuthorStoreNone   = "none"
)

// ID strategies
const (
	IDStrategyUUID   = "uuid"
	IDStrategySQLite = "sqlite"
)

// ErrInvalidConfig is returned when a config value is not one of the allowed choices
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Storage     Storage     `yaml:"storage"`
	IDs         IDs         `yaml:"ids"`
}

// Storage configures where comments and the last author are kept
type Storage struct {
	// DataDir holds the database, the file author store and logs
	DataDir string `yaml:"data_dir"`

	// DBPath overrides the database location (defaults to DataDir/comments.db)
	DBPath string `yaml:"db_path"`

	// AuthorStore selects the last-author backend: sqlite, file, memory or none
	AuthorStore string `yaml:"author_store"`
}

// IDs configures how committed comments get their id
type IDs struct {
	Strategy string `yaml:"strategy"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from REMARK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("REMARK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from path, or from the user's config directory when path is empty.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			// Return default config if we can't determine config path
			config := Default()
			loadThemeFile(config)
			applyNoColor(config)
			return config, nil
		}
	}

	configPath, err := homedir.Expand(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		loadThemeFile(config)
		applyNoColor(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	// Load theme from REMARK_THEME_FILE if set
	loadThemeFile(&config)
	applyNoColor(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the config to path, or to the user's config directory when path is empty
func (c *Config) Save(path string) error {
	configPath := path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Storage.AuthorStore {
	case AuthorStoreSQLite, AuthorStoreFile, AuthorStoreMemory, AuthorStoreNone:
	default:
		return fmt.Errorf("%w: storage.author_store %q", ErrInvalidConfig, c.Storage.AuthorStore)
	}

	switch c.IDs.Strategy {
	case IDStrategyUUID, IDStrategySQLite:
	default:
		return fmt.Errorf("%w: ids.strategy %q", ErrInvalidConfig, c.IDs.Strategy)
	}
	return nil
}

// ResolvedDBPath returns the database path with "~" expanded
func (c *Config) ResolvedDBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return homedir.Expand(c.Storage.DBPath)
	}
	dir, err := c.ResolvedDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "comments.db"), nil
}

// ResolvedDataDir returns the data directory with "~" expanded
func (c *Config) ResolvedDataDir() (string, error) {
	return homedir.Expand(c.Storage.DataDir)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "remark", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "remark", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Storage.DataDir == "" {
		c.Storage.DataDir = filepath.Join("~", ".remark")
	}
	if c.Storage.AuthorStore == "" {
		c.Storage.AuthorStore = AuthorStoreSQLite
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = IDStrategyUUID
	}
}
