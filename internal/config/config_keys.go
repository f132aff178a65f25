// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading; this file
// handles the CLI interface where config is accessed by string keys
// (e.g., "limits.max_path").
//
// Pointers are used for optional fields so "not set" (nil) can be told
// apart from "explicitly set to zero/false"; defaults apply only when the
// user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"audit.enabled",
		"stats.format",
		"limits.max_path",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "audit.enabled":
		if c.AuditEnabled() {
			return "true", nil
		}
		return "false", nil
	case "stats.format":
		return c.Format(), nil
	case "limits.max_path":
		return strconv.Itoa(c.MaxPath()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "audit.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: audit.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Audit.Enabled = &b
	case "stats.format":
		if value != DefaultFormat {
			return fmt.Errorf("%w: stats.format %q is not supported", ErrInvalidValue, value)
		}
		c.Stats.Format = value
	case "limits.max_path":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_path must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxPath = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
