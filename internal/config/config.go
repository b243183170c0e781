package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when the config file or environment leaves a value unset.
const (
	DefaultAPIURL         = "http://localhost:8000/api"
	DefaultRequestTimeout = 30 * time.Second
)

// Environment overrides, read after the config file.
const (
	EnvAPIURL    = "HITO_API_URL"
	EnvDataDir   = "HITO_DATA_DIR"
	EnvProject   = "HITO_PROJECT"
	EnvThemeFile = "HITO_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	// APIURL is the base every API path is resolved against.
	APIURL string `yaml:"api_url"`
	// RequestTimeout is a Go duration string such as "15s".
	RequestTimeout string `yaml:"request_timeout"`
	// DataDir holds the local storage database and the log file.
	DataDir string `yaml:"data_dir"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Timeout parses RequestTimeout, falling back to DefaultRequestTimeout when
// it is empty or malformed.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// Validate reports configuration that would make every request fail.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http(s) URL, got %q", c.APIURL)
	}
	if c.RequestTimeout != "" {
		if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
			return fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
		}
	}
	return nil
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from HITO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
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

func applyEnv(config *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		config.DataDir = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		}
	}

	applyEnv(&config)
	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
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

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hito", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "hito", "config.yaml"), nil
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hito"
	}
	return filepath.Join(homeDir, ".hito")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
