// ABOUTME: Charm KV client wrapper using transactional Do API
// ABOUTME: Short-lived connections so the CLI and MCP server never hold the KV lock

package charm

import (
	"os"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"

	"github.com/harper/wordbook/internal/config"
)

const (
	// DocumentPrefix is the key prefix for backed-up JSON documents.
	DocumentPrefix = "doc:"

	// DBName is the KV database name for wordbook.
	DBName = "wordbook"

	// DefaultHost is used when neither config nor CHARM_HOST names a server.
	DefaultHost = "charm.2389.dev"
)

// Client holds configuration for KV operations. It does not hold a
// persistent connection: each operation opens the database, performs the
// operation, and closes it.
type Client struct {
	dbName   string
	autoSync bool
}

// Option configures a Client.
type Option func(*Client)

// WithDBName sets the database name.
func WithDBName(name string) Option {
	return func(c *Client) {
		c.dbName = name
	}
}

// WithAutoSync enables or disables auto-sync after writes.
func WithAutoSync(enabled bool) Option {
	return func(c *Client) {
		c.autoSync = enabled
	}
}

// NewClient creates a client from the wordbook config.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	// Set charm host if configured
	if cfg.CharmHost != "" {
		if err := os.Setenv("CHARM_HOST", cfg.CharmHost); err != nil {
			return nil, err
		}
	}

	c := &Client{
		dbName:   DBName,
		autoSync: cfg.AutoSync,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DBName returns the KV database this client works against.
func (c *Client) DBName() string {
	return c.dbName
}

// AutoSync reports whether writes are pushed to the server immediately.
func (c *Client) AutoSync() bool {
	return c.autoSync
}

// Get retrieves a value by key (read-only, no lock contention).
func (c *Client) Get(key []byte) ([]byte, error) {
	var val []byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		var err error
		val, err = k.Get(key)
		return err
	})
	return val, err
}

// Do executes a function with write access to the database.
// Use this for batch write operations.
func (c *Client) Do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// Sync triggers a manual sync with the charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// ID returns the charm user ID for this device.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", err
	}
	return cc.ID()
}

// IsLinked returns true if this device is linked to a Charm account.
func (c *Client) IsLinked() bool {
	_, err := c.ID()
	return err == nil
}

// GetCharmHost returns the configured Charm host.
func GetCharmHost() string {
	if host := os.Getenv("CHARM_HOST"); host != "" {
		return host
	}
	return DefaultHost
}
