// Package config loads server settings from an optional JSON5 file
// with environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	defaultSettingsDirName  = ".scopegreen"
	defaultSettingsFileName = "settings.json"

	// SettingsPathEnv overrides the settings file location.
	SettingsPathEnv = "SCOPEGREEN_SETTINGS"
	baseURLEnv      = "SCOPEGREEN_BASE_URL"
	apiKeyEnvEnv    = "SCOPEGREEN_API_KEY_ENV"
)

// Settings is the on-disk configuration. All fields are optional: the
// API key is normally resolved from the environment per call, and the
// base URL has a production default.
type Settings struct {
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// ResolveSettingsPath resolves the settings file path, expanding a
// leading ~ and falling back to ~/.scopegreen/settings.json.
func ResolveSettingsPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed != "" {
		if strings.HasPrefix(trimmed, "~") {
			if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
				return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
			}
		}
		return filepath.Clean(trimmed)
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return filepath.Join(os.TempDir(), defaultSettingsDirName, defaultSettingsFileName)
	}
	return filepath.Join(home, defaultSettingsDirName, defaultSettingsFileName)
}

// LoadSettings reads the settings file, tolerating a missing or
// unparseable file: a credential problem surfaces as a call-time
// error result, never as a startup crash.
func LoadSettings(path string) Settings {
	var settings Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	if err := json5.Unmarshal(data, &settings); err != nil {
		return Settings{}
	}
	return settings
}

// ApplyEnv layers environment variable overrides on top of the file
// settings.
func (s Settings) ApplyEnv() Settings {
	if v := strings.TrimSpace(os.Getenv(baseURLEnv)); v != "" {
		s.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(apiKeyEnvEnv)); v != "" {
		s.APIKeyEnv = v
	}
	return s
}
