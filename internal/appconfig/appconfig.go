// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultAPIURL is the backend base path used when none is configured.
	DefaultAPIURL = "http://localhost:8000/api/v1"
	// defaultRequestTimeout is the default timeout for HTTP requests.
	defaultRequestTimeout = 30 * time.Second
	// defaultAlertWindow is how long an alert stays visible.
	defaultAlertWindow = 5 * time.Second
	// defaultLogFile is where logs go when no path is configured.
	defaultLogFile = "modelhub.log"
)

// Config represents the top-level application configuration.
type Config struct {
	APIURL         string `json:"apiURL" mapstructure:"apiURL"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	AlertSeconds   int    `json:"alertSeconds,omitempty" mapstructure:"alertSeconds"`
	LogFile        string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	JSONMode       bool   `json:"jsonMode" mapstructure:"jsonMode"`
	ConfigPath     string `json:"-" mapstructure:"-"`
}

// BaseURL returns the configured API base without a trailing slash.
func (c Config) BaseURL() string {
	base := strings.TrimSpace(c.APIURL)
	if base == "" {
		base = DefaultAPIURL
	}
	return strings.TrimRight(base, "/")
}

// RequestTimeout returns the timeout duration for HTTP requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AlertWindow returns how long an alert stays on screen.
func (c Config) AlertWindow() time.Duration {
	if c.AlertSeconds <= 0 {
		return defaultAlertWindow
	}
	return time.Duration(c.AlertSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Validate reports configuration values that can never work.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL())
	if err != nil {
		return fmt.Errorf("invalid apiURL %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid apiURL %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid apiURL %q: missing host", c.APIURL)
	}
	return nil
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(config.APIURL) == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}
	if config.AlertSeconds <= 0 {
		config.AlertSeconds = int(defaultAlertWindow.Seconds())
	}

	return config, nil
}
