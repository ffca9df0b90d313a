// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the Vaultmaster application configuration.
// Configuration is resolved from defaults, a vaultmaster.yaml file (user,
// system or current directory), VAULTMASTER_* environment variables and
// bound CLI flags, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration. Note this is tool configuration
// (where data lives, which language to speak), not the vault's durable state.
type Config struct {
	// DataDir is the directory holding config.json and vault.json.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// Language selects the locale for user-facing strings ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// DefaultCategory is assigned to entries added without a category.
	DefaultCategory string `mapstructure:"default_category" yaml:"default_category"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`

	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// GeneratorConfig holds password generator defaults.
type GeneratorConfig struct {
	// Length is the default length for generated passwords.
	Length int `mapstructure:"length" yaml:"length"`
}

// DefaultDataDir returns the per-user vault data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".vaultmaster"), nil
}

// Defaults returns the viper default map used when no other source sets a key.
func Defaults() map[string]any {
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = ".vaultmaster"
	}
	return map[string]any{
		"data_dir":         dataDir,
		"language":         "en",
		"default_category": "General",
		"debug":            false,
		"generator.length": 16,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Vaultmaster")
		default: // Linux, macOS, etc.
			configDir = "/etc/vaultmaster"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "vaultmaster")
	}

	return filepath.Join(configDir, "vaultmaster.yaml"), nil
}

// LoadConfig resolves the configuration for the given command. An explicit
// config file path (from a --config flag) has the highest file precedence.
// When no config file exists anywhere, the returned Config still carries the
// resolved defaults and the error is viper.ConfigFileNotFoundError, so the
// caller can decide whether to write one.
func LoadConfig(cmd *cobra.Command, additionalConfigFilePath *string) (Config, error) {
	var c Config
	v := viper.New()

	// 1. Set defaults
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("vaultmaster")
	v.SetConfigType("yaml")

	// 3. Add explicit config file path if provided via --config flag.
	if additionalConfigFilePath != nil && *additionalConfigFilePath != "" {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for vaultmaster.yaml in current dir

	// 5. Read in the primary config file.
	var notFoundErr error
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFoundErr = err
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("vaultmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Bind CLI flags (highest precedence)
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFoundErr
}

// WriteConfigFile persists the configuration as YAML to the standard user or
// system location.
func WriteConfigFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	err = os.WriteFile(path, data, 0600) // Use 0600 for security, as it may contain secrets
	if err != nil {
		return err
	}

	return nil
}
