package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-a, --addr            HTTP bind address (e.g. ":3000")
//	-b, --storage         storage backend: postgres, mongo, memory
//	-d, --database-dsn    PostgreSQL DSN
//	-m, --mongo-uri       MongoDB connection URI
//	-n, --mongo-database  MongoDB database name
//	-s, --secret          token HMAC secret
//	-t, --token-ttl       sign-in token lifetime (e.g. 168h)
//	-w, --sweep-interval  blacklist prune interval, 0 disables
//	    --shutdown-timeout
//	    --log-level
//	    --log-format
//
// Unknown flags (including -c/--config, handled by parseJSON) are ignored.
func parseFlags(config *Config, args []string) error {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	fs.StringVarP(&config.EndpointAddr, "addr", "a", config.EndpointAddr, "address and port to run server")
	fs.StringVarP(&config.StorageBackend, "storage", "b", config.StorageBackend, "storage backend (postgres, mongo, memory)")
	fs.StringVarP(&config.DatabaseDSN, "database-dsn", "d", config.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVarP(&config.MongoURI, "mongo-uri", "m", config.MongoURI, "MongoDB URI")
	fs.StringVarP(&config.MongoDatabase, "mongo-database", "n", config.MongoDatabase, "MongoDB database")
	fs.StringVarP(&config.SecretKey, "secret", "s", config.SecretKey, "token secret key")
	fs.DurationVarP(&config.SignInTokenTTL, "token-ttl", "t", config.SignInTokenTTL, "sign-in token lifetime")
	fs.DurationVarP(&config.BlacklistSweepInterval, "sweep-interval", "w", config.BlacklistSweepInterval, "blacklist prune interval")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (json, text)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	return nil
}
