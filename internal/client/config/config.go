package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerURL      string
	SessionFile    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The session file lives in
// the user's config directory when one is known.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.SessionFile = ".gameslib_session"
	if dir, err := os.UserConfigDir(); err == nil {
		c.SessionFile = filepath.Join(dir, "gameslib", "session")
	}
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig applies defaults, then the JSON file named by -c/--config, then
// the remaining flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
