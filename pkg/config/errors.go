package config

import "fmt"

// ConfigError reports the first offending field of a structurally invalid
// document.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid config"
	}
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %s", e.Message)
	}
	return fmt.Sprintf("invalid config: %s: %s", e.Path, e.Message)
}

func errAt(path, message string) *ConfigError {
	return &ConfigError{Path: path, Message: message}
}
