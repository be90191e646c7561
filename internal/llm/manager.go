package llm

import (
	"sync"
	"time"

	"github.com/tacogips/aiscaffold/internal/config"
	"github.com/tacogips/aiscaffold/internal/debug"
)

// Manager owns the process-wide provider client. The client is built
// lazily on first use and invalidated whenever the configuration changes,
// replacing the implicit module-level singleton with an explicit
// init/reset lifecycle.
type Manager struct {
	mu     sync.Mutex
	cfg    *config.Config
	client *Client
}

// NewManager creates a Manager for the given configuration.
// No client is constructed until the first Client call.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg}
}

// Client returns the shared client, constructing it on first use.
func (m *Manager) Client() *Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		m.client = buildClient(m.cfg)
		debug.Debug("[llm] Manager: client initialized (model=%s)", m.client.Model())
	}
	return m.client
}

// Reset replaces the configuration and drops the current client so the
// next Client call rebuilds it. Called on configuration change.
func (m *Manager) Reset(cfg *config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg = cfg
	m.client = nil
	debug.Debug("[llm] Manager: client invalidated by configuration change")
}

func buildClient(cfg *config.Config) *Client {
	return NewClient(config.ResolveAPIKey(cfg), ClientOptions{
		BaseURL:           cfg.Provider.BaseURL,
		Model:             cfg.Provider.Model,
		Timeout:           time.Duration(cfg.Provider.Timeout) * time.Second,
		RequestsPerMinute: cfg.Provider.RequestsPerMinute,
	})
}
