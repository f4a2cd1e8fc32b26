package repomanager

import (
	"context"

	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/games"
	"github.com/lfgames/gameslib/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data is lost on
// restart.
type MemoryRepositoryManager struct {
	users     *users.MemoryRepository
	games     *games.MemoryRepository
	blacklist *blacklist.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		games:     games.NewMemoryRepository(),
		blacklist: blacklist.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository         { return m.users }
func (m *MemoryRepositoryManager) Games() games.Repository         { return m.games }
func (m *MemoryRepositoryManager) Blacklist() blacklist.Repository { return m.blacklist }

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *MemoryRepositoryManager) Close(ctx context.Context) error         { return nil }
