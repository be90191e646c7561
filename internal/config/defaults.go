package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			APIKeyEnv:         "AISCAFFOLD_API_KEY",
			BaseURL:           "https://api.openai.com/v1",
			Model:             "gpt-4o-mini",
			Timeout:           120,
			RequestsPerMinute: 60,
		},
		Workspace: WorkspaceConfig{
			ExcludePatterns: DefaultExcludePatterns(),
			ListLimit:       200,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultExcludePatterns returns the paths excluded from workspace summaries.
func DefaultExcludePatterns() []string {
	return []string{
		".git",
		".hg",
		".svn",
		"node_modules",
		"vendor",
		"dist",
		"build",
		"target",
		".idea",
		".vscode",
		".DS_Store",
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "aiscaffold", "config.json")
}
