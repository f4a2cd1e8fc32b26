package repomanager

import (
	"context"

	"github.com/lfgames/gameslib/internal/mongox"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepositoryManager vends MongoDB-backed repositories over one client.
type MongoRepositoryManager struct {
	client    *mongo.Client
	users     *users.MongoRepository
	games     *games.MongoRepository
	blacklist *blacklist.MongoRepository
}

func NewMongoRepositoryManager(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongox.Connect(ctx, uri)
	if err != nil {
		return nil, err
	}
	return newMongoRepositoryManager(client, client.Database(database)), nil
}

func newMongoRepositoryManager(client *mongo.Client, db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		client:    client,
		users:     users.NewMongoRepository(db),
		games:     games.NewMongoRepository(db),
		blacklist: blacklist.NewMongoRepository(db),
	}
}

func (m *MongoRepositoryManager) Users() users.Repository         { return m.users }
func (m *MongoRepositoryManager) Games() games.Repository         { return m.games }
func (m *MongoRepositoryManager) Blacklist() blacklist.Repository { return m.blacklist }

// RunMigrations creates the unique and TTL indexes.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := m.games.EnsureIndexes(ctx); err != nil {
		return err
	}
	return m.blacklist.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
