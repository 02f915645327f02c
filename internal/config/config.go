// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for aquagen.
type Config struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	Model     string `mapstructure:"model" yaml:"model"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
}

// Credentials supplies the report service API key. The wizard receives
// a Credentials value at construction so tests can inject deterministic
// keys instead of reading the environment inline.
type Credentials interface {
	APIKey() string
}

type staticCredentials string

func (s staticCredentials) APIKey() string { return string(s) }

// Static wraps a fixed API key in a Credentials value.
func Static(key string) Credentials { return staticCredentials(key) }

// Credentials returns the credential source backed by this config.
// An unset key yields the empty string; the report service is
// responsible for rejecting it.
func (c *Config) Credentials() Credentials {
	return staticCredentials(c.APIKey)
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("aquagen")

	// Defaults (api_key has no default - empty string passes through)
	v.SetDefault("api_key", "")
	v.SetDefault("model", "claude-sonnet-4-5")
	v.SetDefault("output_dir", "reports")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with AQUAGEN_ prefix
	v.SetEnvPrefix("AQUAGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing. The API key also binds
	// the conventional ANTHROPIC_API_KEY so existing shells just work.
	if err := v.BindEnv("api_key", "AQUAGEN_API_KEY", "ANTHROPIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding api_key env: %w", err)
	}
	if err := v.BindEnv("model", "AQUAGEN_MODEL"); err != nil {
		return nil, fmt.Errorf("binding model env: %w", err)
	}
	if err := v.BindEnv("output_dir", "AQUAGEN_OUTPUT_DIR"); err != nil {
		return nil, fmt.Errorf("binding output_dir env: %w", err)
	}
	if err := v.BindEnv("log_level", "AQUAGEN_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "AQUAGEN_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/aquagen/aquagen.yml or $XDG_CONFIG_HOME/aquagen/aquagen.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aquagen", "aquagen.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aquagen", "aquagen.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./aquagen.yml in the current working directory.
func ProjectPath() string {
	return "aquagen.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	path := ProjectPath()

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
