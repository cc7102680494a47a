package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
)

// Backend modes.
const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// Config holds runtime settings for the vault CLI.
type Config struct {
	// Mode selects the backend: ModeRemote talks to the server, ModeLocal
	// keeps everything in the SQLite file at LocalDSN.
	Mode                string
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	LocalDSN            string
	// KDFParams are used for accounts registered by this client.
	KDFParams cryptox.Params
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Mode = ModeRemote
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.LocalDSN = "gophvault.db"
	c.KDFParams = cryptox.DefaultParams()
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeRemote:
		if c.ServerEndpointAddr == "" {
			return fmt.Errorf("server address is required in %s mode", ModeRemote)
		}
	case ModeLocal:
		if c.LocalDSN == "" {
			return fmt.Errorf("database file is required in %s mode", ModeLocal)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive")
	}
	return c.KDFParams.Validate()
}
