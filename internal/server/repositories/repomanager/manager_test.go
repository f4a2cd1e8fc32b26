package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lfgames/gameslib/internal/server/config"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNew_Memory(t *testing.T) {
	m, err := New(context.Background(), &config.Config{StorageBackend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepositoryManager{}, m)
	assert.NoError(t, m.RunMigrations(context.Background()))
	assert.NoError(t, m.Close(context.Background()))
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageBackend: "redis"})
	assert.ErrorContains(t, err, `unknown storage backend "redis"`)
}

func TestPostgresFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := newPostgresRepositoryManager(db)

	assert.IsType(t, &users.PostgresRepository{}, m.Users())
	assert.IsType(t, &games.PostgresRepository{}, m.Games())
	assert.IsType(t, &blacklist.PostgresRepository{}, m.Blacklist())

	var _ RepositoryManager = m
}

func TestMemoryFactories_ShareState(t *testing.T) {
	m := NewMemoryRepositoryManager()
	assert.Same(t, m.Users(), m.Users())
	assert.IsType(t, &games.MemoryRepository{}, m.Games())
	assert.IsType(t, &blacklist.MemoryRepository{}, m.Blacklist())
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, got *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if got != db {
			return errors.New("unexpected db")
		}
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPostgresClose(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectClose()

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.Close(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMongoRunMigrations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes", func(mt *mtest.T) {
		m := newMongoRepositoryManager(nil, mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, m.RunMigrations(context.Background()))
		assert.IsType(mt, &users.MongoRepository{}, m.Users())
		assert.NoError(mt, m.Close(context.Background()))
	})

	mt.Run("index failure", func(mt *mtest.T) {
		m := newMongoRepositoryManager(nil, mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index exists with different options",
		}))

		assert.ErrorContains(mt, m.RunMigrations(context.Background()), "create users index")
	})
}
