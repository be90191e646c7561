package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	// Merge with defaults for any missing fields
	mergeConfig(&cfg, DefaultConfig())

	debug.Debug("[config] Loaded configuration from %s (model=%s)", path, cfg.Provider.Model)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Provider.BaseURL == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "provider.base_url", "base URL cannot be empty")
	}
	if config.Provider.Model == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "provider.model", "model cannot be empty")
	}
	if config.Provider.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "provider.timeout", "timeout cannot be negative")
	}
	if config.Provider.RequestsPerMinute < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "provider.requests_per_minute", "request rate cannot be negative")
	}
	if config.Workspace.ListLimit < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "workspace.list_limit", "list limit cannot be negative")
	}
	return nil
}

// mergeConfig fills zero-valued fields of cfg from defaults.
func mergeConfig(cfg *Config, defaults *Config) {
	if cfg.Provider.APIKeyEnv == "" {
		cfg.Provider.APIKeyEnv = defaults.Provider.APIKeyEnv
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = defaults.Provider.BaseURL
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = defaults.Provider.Model
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = defaults.Provider.Timeout
	}
	if cfg.Provider.RequestsPerMinute == 0 {
		cfg.Provider.RequestsPerMinute = defaults.Provider.RequestsPerMinute
	}
	if cfg.Workspace.ExcludePatterns == nil {
		cfg.Workspace.ExcludePatterns = defaults.Workspace.ExcludePatterns
	}
	if cfg.Workspace.ListLimit == 0 {
		cfg.Workspace.ListLimit = defaults.Workspace.ListLimit
	}
}

// ResolveAPIKey returns the provider API key.
// Priority: configured environment variable > api_key field.
func ResolveAPIKey(cfg *Config) string {
	if cfg.Provider.APIKeyEnv != "" {
		if key := os.Getenv(cfg.Provider.APIKeyEnv); key != "" {
			return key
		}
	}
	return cfg.Provider.APIKey
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed. Fails if the file already exists unless force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		return NewConfigError(ConfigValidationFailed, path, "configuration path is empty")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return NewConfigError(ConfigValidationFailed, path, "configuration file already exists")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to create configuration directory", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to encode configuration", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}
	return nil
}
