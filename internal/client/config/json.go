package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

type JSONConfig struct {
	ServerURL      string          `json:"server_url"`
	SessionFile    string          `json:"session_file"`
	RequestTimeout json.RawMessage `json:"request_timeout"`
}

func configFileFlag(args []string) string {
	var path string

	fs := pflag.NewFlagSet("json", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.StringVarP(&path, "config", "c", "", "path to JSON config file")
	_ = fs.Parse(args)

	return path
}

func parseJSON(config *Config, args []string) error {
	path := configFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
	if c.SessionFile != "" {
		config.SessionFile = c.SessionFile
	}
	if len(c.RequestTimeout) > 0 {
		d, err := parseDuration(c.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse config file: request_timeout: %w", err)
		}
		config.RequestTimeout = d
	}

	return nil
}

// parseDuration accepts "5s" style strings or integer nanoseconds.
func parseDuration(raw json.RawMessage) (time.Duration, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return time.ParseDuration(s)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid duration %s", string(raw))
	}
	return time.Duration(n), nil
}
