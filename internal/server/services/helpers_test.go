package services

import (
	"context"
	"errors"
	"time"

	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/repomanager"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

// fakeRepoManager serves the memory repositories unless a field overrides one.
type fakeRepoManager struct {
	mem *repomanager.MemoryRepositoryManager
	u   users.Repository
	g   games.Repository
	b   blacklist.Repository
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{mem: repomanager.NewMemoryRepositoryManager()}
}

func (m *fakeRepoManager) Users() users.Repository {
	if m.u != nil {
		return m.u
	}
	return m.mem.Users()
}

func (m *fakeRepoManager) Games() games.Repository {
	if m.g != nil {
		return m.g
	}
	return m.mem.Games()
}

func (m *fakeRepoManager) Blacklist() blacklist.Repository {
	if m.b != nil {
		return m.b
	}
	return m.mem.Blacklist()
}

func (m *fakeRepoManager) RunMigrations(context.Context) error { return nil }
func (m *fakeRepoManager) Close(context.Context) error         { return nil }

type failingUsersRepo struct {
	err error
}

func (f *failingUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, f.err
}
func (f *failingUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f *failingUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	return nil, f.err
}

type failingGamesRepo struct {
	exists    bool
	existsErr error
	createErr error
	listErr   error
	setErr    error
}

func (f *failingGamesRepo) Create(context.Context, *models.Game) (*models.Game, error) {
	return nil, f.createErr
}
func (f *failingGamesRepo) Exists(context.Context, string, int64) (bool, error) {
	return f.exists, f.existsErr
}
func (f *failingGamesRepo) ListByUser(context.Context, string) ([]*models.Game, error) {
	return nil, f.listErr
}
func (f *failingGamesRepo) SetCompleted(context.Context, string, int64, bool) (*models.Game, error) {
	return nil, f.setErr
}

type failingBlacklistRepo struct {
	addErr    error
	existsErr error
	deleteErr error
}

func (f *failingBlacklistRepo) Add(context.Context, *models.BlacklistEntry) error { return f.addErr }
func (f *failingBlacklistRepo) Exists(context.Context, string, string, time.Time) (bool, error) {
	return false, f.existsErr
}
func (f *failingBlacklistRepo) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, f.deleteErr
}
