package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestLoad tests configuration loading and defaults merging
func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeTestConfig(t, `{
			"provider": {
				"api_key_env": "MY_KEY",
				"base_url": "https://example.com/v1",
				"model": "custom-model",
				"timeout": 30,
				"requests_per_minute": 10
			},
			"workspace": {
				"exclude_patterns": ["tmp"],
				"list_limit": 50
			}
		}`)

		loader := NewLoader()
		cfg, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}

		if cfg.Provider.Model != "custom-model" {
			t.Errorf("model = %q", cfg.Provider.Model)
		}
		if cfg.Provider.BaseURL != "https://example.com/v1" {
			t.Errorf("base URL = %q", cfg.Provider.BaseURL)
		}
		if cfg.Provider.Timeout != 30 {
			t.Errorf("timeout = %d", cfg.Provider.Timeout)
		}
		if cfg.Workspace.ListLimit != 50 {
			t.Errorf("list limit = %d", cfg.Workspace.ListLimit)
		}
		if len(cfg.Workspace.ExcludePatterns) != 1 || cfg.Workspace.ExcludePatterns[0] != "tmp" {
			t.Errorf("exclude patterns = %v", cfg.Workspace.ExcludePatterns)
		}
	})

	t.Run("partial config merges defaults", func(t *testing.T) {
		path := writeTestConfig(t, `{"provider": {"model": "custom-model"}}`)

		cfg, err := NewLoader().Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}

		defaults := DefaultConfig()
		if cfg.Provider.Model != "custom-model" {
			t.Errorf("model = %q", cfg.Provider.Model)
		}
		if cfg.Provider.BaseURL != defaults.Provider.BaseURL {
			t.Errorf("base URL = %q, want default", cfg.Provider.BaseURL)
		}
		if cfg.Provider.Timeout != defaults.Provider.Timeout {
			t.Errorf("timeout = %d, want default", cfg.Provider.Timeout)
		}
		if cfg.Workspace.ListLimit != defaults.Workspace.ListLimit {
			t.Errorf("list limit = %d, want default", cfg.Workspace.ListLimit)
		}
		if len(cfg.Workspace.ExcludePatterns) == 0 {
			t.Errorf("exclude patterns not merged from defaults")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.json"))
		cfgErr, ok := err.(*ConfigError)
		if !ok || cfgErr.Type != ConfigNotFound {
			t.Fatalf("error = %v, want ConfigNotFound", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTestConfig(t, `{not json`)
		_, err := NewLoader().Load(path)
		cfgErr, ok := err.(*ConfigError)
		if !ok || cfgErr.Type != ConfigInvalid {
			t.Fatalf("error = %v, want ConfigInvalid", err)
		}
	})
}

// TestLoadOrDefault tests the fallback-to-defaults path
func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "nope.json"))
		if err != nil {
			t.Fatalf("LoadOrDefault() error: %v", err)
		}
		if cfg.Provider.Model != DefaultConfig().Provider.Model {
			t.Errorf("model = %q, want default", cfg.Provider.Model)
		}
	})

	t.Run("invalid file still fails", func(t *testing.T) {
		path := writeTestConfig(t, `{broken`)
		if _, err := NewLoader().LoadOrDefault(path); err == nil {
			t.Fatal("LoadOrDefault() succeeded on invalid JSON")
		}
	})
}

// TestValidate tests configuration validation rules
func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:      "empty base URL",
			mutate:    func(c *Config) { c.Provider.BaseURL = "" },
			wantField: "provider.base_url",
		},
		{
			name:      "empty model",
			mutate:    func(c *Config) { c.Provider.Model = "" },
			wantField: "provider.model",
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.Provider.Timeout = -1 },
			wantField: "provider.timeout",
		},
		{
			name:      "negative request rate",
			mutate:    func(c *Config) { c.Provider.RequestsPerMinute = -1 },
			wantField: "provider.requests_per_minute",
		},
		{
			name:      "negative list limit",
			mutate:    func(c *Config) { c.Workspace.ListLimit = -1 },
			wantField: "workspace.list_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := NewLoader().Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok || cfgErr.Type != ConfigValidationFailed {
				t.Fatalf("error = %v, want ConfigValidationFailed", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

// TestResolveAPIKey tests environment-over-file key resolution
func TestResolveAPIKey(t *testing.T) {
	t.Run("environment takes precedence", func(t *testing.T) {
		t.Setenv("AISCAFFOLD_TEST_KEY", "env-key")
		cfg := DefaultConfig()
		cfg.Provider.APIKeyEnv = "AISCAFFOLD_TEST_KEY"
		cfg.Provider.APIKey = "file-key"

		if got := ResolveAPIKey(cfg); got != "env-key" {
			t.Errorf("ResolveAPIKey() = %q, want env-key", got)
		}
	})

	t.Run("falls back to file key", func(t *testing.T) {
		t.Setenv("AISCAFFOLD_TEST_KEY", "")
		cfg := DefaultConfig()
		cfg.Provider.APIKeyEnv = "AISCAFFOLD_TEST_KEY"
		cfg.Provider.APIKey = "file-key"

		if got := ResolveAPIKey(cfg); got != "file-key" {
			t.Errorf("ResolveAPIKey() = %q, want file-key", got)
		}
	})

	t.Run("empty when nothing configured", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider.APIKeyEnv = "AISCAFFOLD_TEST_UNSET_KEY"

		if got := ResolveAPIKey(cfg); got != "" {
			t.Errorf("ResolveAPIKey() = %q, want empty", got)
		}
	})
}

// TestWriteDefault tests default config file creation
func TestWriteDefault(t *testing.T) {
	t.Run("creates file and parents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.json")
		if err := WriteDefault(path, false); err != nil {
			t.Fatalf("WriteDefault() error: %v", err)
		}

		cfg, err := NewLoader().Load(path)
		if err != nil {
			t.Fatalf("written config does not load: %v", err)
		}
		if cfg.Provider.APIKeyEnv != "AISCAFFOLD_API_KEY" {
			t.Errorf("api key env = %q", cfg.Provider.APIKeyEnv)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := WriteDefault(path, false); err != nil {
			t.Fatalf("first write error: %v", err)
		}
		if err := WriteDefault(path, false); err == nil {
			t.Fatal("second write succeeded without force")
		}
		if err := WriteDefault(path, true); err != nil {
			t.Errorf("forced write error: %v", err)
		}
	})
}
