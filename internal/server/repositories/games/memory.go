package games

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/server/models"
)

type gameKey struct {
	userID string
	gameID int64
}

type MemoryRepository struct {
	mu    sync.RWMutex
	games map[gameKey]*models.Game
	seq   int64
	order map[gameKey]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		games: make(map[gameKey]*models.Game),
		order: make(map[gameKey]int64),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := gameKey{userID: game.UserID, gameID: game.GameID}
	if _, ok := r.games[k]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := cloneGame(game)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.seq++
	r.games[k] = stored
	r.order[k] = r.seq
	return cloneGame(stored), nil
}

func (r *MemoryRepository) Exists(ctx context.Context, userID string, gameID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.games[gameKey{userID: userID, gameID: gameID}]
	return ok, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]gameKey, 0)
	for k := range r.games {
		if k.userID == userID {
			keys = append(keys, k)
		}
	}
	// insertion sequence orders games created within the same clock tick
	sort.Slice(keys, func(i, j int) bool { return r.order[keys[i]] > r.order[keys[j]] })

	result := make([]*models.Game, 0, len(keys))
	for _, k := range keys {
		result = append(result, cloneGame(r.games[k]))
	}
	return result, nil
}

func (r *MemoryRepository) SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.games[gameKey{userID: userID, gameID: gameID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	g.Completed = completed
	return cloneGame(g), nil
}

func cloneGame(g *models.Game) *models.Game {
	out := *g
	out.Platforms = append([]string(nil), g.Platforms...)
	out.Genres = append([]string(nil), g.Genres...)
	return &out
}
