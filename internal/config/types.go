package config

// Config represents the global aiscaffold configuration.
type Config struct {
	// Provider configuration for the text-generation endpoint.
	Provider ProviderConfig `json:"provider"`
	// Workspace configuration for the existing-paths summary.
	Workspace WorkspaceConfig `json:"workspace"`
	// Output configuration for display.
	Output OutputConfig `json:"output"`
}

// ProviderConfig represents text-generation provider settings.
type ProviderConfig struct {
	// APIKey is the provider API key. Prefer APIKeyEnv over storing it here.
	APIKey string `json:"api_key,omitempty"`
	// APIKeyEnv is the environment variable consulted for the API key.
	// The environment takes precedence over the api_key field.
	APIKeyEnv string `json:"api_key_env"`
	// BaseURL is the chat-completions endpoint base URL.
	BaseURL string `json:"base_url"`
	// Model is the model identifier sent with every request.
	Model string `json:"model"`
	// Timeout is the request timeout in seconds.
	Timeout int `json:"timeout"`
	// RequestsPerMinute bounds the provider request rate (0 = default).
	RequestsPerMinute int `json:"requests_per_minute"`
}

// WorkspaceConfig represents existing-path summary settings.
type WorkspaceConfig struct {
	// ExcludePatterns are directory or file names excluded from the summary.
	ExcludePatterns []string `json:"exclude_patterns"`
	// ListLimit caps the number of paths included in the summary.
	ListLimit int `json:"list_limit"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}
