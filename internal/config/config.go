// Package config reads user defaults for chatfmt from an ini file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// EnvPath overrides the location of the config file
const EnvPath = "CHATFMT_CONFIG"

// Config represents the user configuration
type Config struct {
	file *ini.File
	path string
}

// Path returns the config file location: $CHATFMT_CONFIG or ~/.chatfmt/config
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".chatfmt", "config"), nil
}

// Load reads the configuration file from its default location
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
// A missing file yields an empty config, not an error.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{file: ini.Empty(), path: path}, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	return &Config{file: file, path: path}, nil
}

// File returns the path the config was loaded from
func (c *Config) File() string {
	return c.path
}

// GetString retrieves a string value from the config
// section.key format (e.g., "defaults.profile")
func (c *Config) GetString(key string) string {
	section, keyName := c.parseKey(key)
	if section == "" {
		return ""
	}

	sec, err := c.file.GetSection(section)
	if err != nil {
		return ""
	}

	// Key would create a missing key
	k, err := sec.GetKey(keyName)
	if err != nil {
		return ""
	}
	return k.String()
}

// GetBool retrieves a boolean value from the config
func (c *Config) GetBool(key string) bool {
	val := strings.ToLower(c.GetString(key))
	return val == "true" || val == "yes" || val == "1" || val == "on"
}

// HasKey checks if a key exists in the config
func (c *Config) HasKey(key string) bool {
	section, keyName := c.parseKey(key)
	if section == "" {
		return false
	}

	sec, err := c.file.GetSection(section)
	if err != nil {
		return false
	}

	return sec.HasKey(keyName)
}

// GetStringWithFallback retrieves a string value with a fallback default
func (c *Config) GetStringWithFallback(key, fallback string) string {
	if c.HasKey(key) {
		return c.GetString(key)
	}
	return fallback
}

// parseKey splits a dotted key into section and key name
// e.g., "defaults.profile" -> ("defaults", "profile")
func (c *Config) parseKey(key string) (string, string) {
	lastDot := strings.LastIndex(key, ".")
	if lastDot == -1 {
		return "", ""
	}
	return key[:lastDot], key[lastDot+1:]
}
