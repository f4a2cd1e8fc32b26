package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("database DSN is required for the postgres backend")
		}
	case BackendMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return errors.New("mongo URI and database are required for the mongo backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	if c.SignInTokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if c.BlacklistSweepInterval < 0 {
		return errors.New("blacklist sweep interval must not be negative")
	}

	return nil
}
