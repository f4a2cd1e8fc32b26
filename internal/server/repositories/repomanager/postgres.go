package repomanager

import (
	"context"
	"database/sql"

	"github.com/lfgames/gameslib/internal/dbx"
	"github.com/lfgames/gameslib/internal/server/migrations"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one
// connection pool.
type PostgresRepositoryManager struct {
	db        *sql.DB
	users     *users.PostgresRepository
	games     *games.PostgresRepository
	blacklist *blacklist.PostgresRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens dsn and binds the repositories to it.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := dbx.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return newPostgresRepositoryManager(db), nil
}

func newPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		games:     games.NewPostgresRepository(db),
		blacklist: blacklist.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Users() users.Repository         { return m.users }
func (m *PostgresRepositoryManager) Games() games.Repository         { return m.games }
func (m *PostgresRepositoryManager) Blacklist() blacklist.Repository { return m.blacklist }

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Close(ctx context.Context) error {
	return m.db.Close()
}
