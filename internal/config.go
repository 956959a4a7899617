package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultServerURL is used when no server is configured.
	DefaultServerURL = "http://localhost:8000"
	// DefaultTimeoutSeconds bounds a single API call.
	DefaultTimeoutSeconds = 30

	configFileName = "config.yaml"
	configDirName  = "openretail"
)

// AppConfig holds the client configuration persisted in the user's config
// directory.
type AppConfig struct {
	ServerURL      string `yaml:"server_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	DataDir        string `yaml:"data_dir,omitempty"`
}

// Timeout returns the configured request timeout.
func (c *AppConfig) Timeout() time.Duration {
	secs := c.TimeoutSeconds
	if secs <= 0 {
		secs = DefaultTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, configDirName), nil
}

// LoadConfig reads the config file from dir. A missing file yields defaults,
// not an error. The OPENRETAIL_SERVER environment variable overrides the
// configured server URL.
func LoadConfig(dir string) (*AppConfig, error) {
	cfg := &AppConfig{
		ServerURL:      DefaultServerURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if env := os.Getenv("OPENRETAIL_SERVER"); env != "" {
		cfg.ServerURL = env
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// SaveConfig writes the config file to dir, creating it if needed.
func SaveConfig(dir string, cfg *AppConfig) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, configFileName), data, 0644)
}
