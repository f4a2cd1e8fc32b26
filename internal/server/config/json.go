package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// Duration is a time.Duration that unmarshals from either a string such as
// "168h" or an integer number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// JSONConfig is the on-disk shape of the configuration file. Zero values are
// treated as "not set" and keep whatever the defaults provided.
type JSONConfig struct {
	EndpointAddr           string   `json:"endpoint_addr"`
	StorageBackend         string   `json:"storage_backend"`
	DatabaseDSN            string   `json:"database_dsn"`
	MongoURI               string   `json:"mongo_uri"`
	MongoDatabase          string   `json:"mongo_database"`
	SecretKey              string   `json:"secret_key"`
	SignInTokenTTL         Duration `json:"sign_in_token_ttl"`
	BlacklistSweepInterval Duration `json:"blacklist_sweep_interval"`
	ShutdownTimeout        Duration `json:"shutdown_timeout"`
	LogLevel               string   `json:"log_level"`
	LogFormat              string   `json:"log_format"`
}

// configFileFlag extracts -c/--config from args, ignoring every other flag.
func configFileFlag(args []string) string {
	var path string

	fs := pflag.NewFlagSet("json", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.StringVarP(&path, "config", "c", "", "path to JSON config file")
	_ = fs.Parse(args)

	return path
}

// parseJSON loads the JSON file named by -c/--config (if any) into config.
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

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.SignInTokenTTL, c.SignInTokenTTL)
	setDuration(&config.BlacklistSweepInterval, c.BlacklistSweepInterval)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v Duration) {
	if v != 0 {
		*dst = time.Duration(v)
	}
}
