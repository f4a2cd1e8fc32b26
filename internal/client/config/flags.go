package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

func parseFlags(config *Config, args []string) error {
	fs := pflag.NewFlagSet("cli", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	fs.StringVarP(&config.ServerURL, "server", "u", config.ServerURL, "base URL of the games library API")
	fs.StringVarP(&config.SessionFile, "session", "f", config.SessionFile, "file holding the signed-in token")
	fs.DurationVarP(&config.RequestTimeout, "timeout", "t", config.RequestTimeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
