// Package repomanager vends the user, game and blacklist repositories for one
// storage backend and owns that backend's connection.
package repomanager

import (
	"context"
	"fmt"

	"github.com/lfgames/gameslib/internal/server/config"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Games() games.Repository
	Blacklist() blacklist.Repository
	// RunMigrations prepares the schema: goose migrations for Postgres,
	// indexes for MongoDB.
	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}

// New connects to the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case config.BackendMongo:
		return NewMongoRepositoryManager(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.BackendMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
