package blacklist

import (
	"context"
	"sync"
	"time"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/server/models"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]models.BlacklistEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]models.BlacklistEntry)}
}

func (r *MemoryRepository) Add(ctx context.Context, entry *models.BlacklistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.TokenHash]; ok {
		return common.ErrorAlreadyExists
	}
	stored := *entry
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.entries[entry.TokenHash] = stored
	return nil
}

func (r *MemoryRepository) Exists(ctx context.Context, tokenHash, userID string, now time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[tokenHash]
	return ok && e.UserID == userID && e.ExpiresAt.After(now), nil
}

func (r *MemoryRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for k, e := range r.entries {
		if !e.ExpiresAt.After(now) {
			delete(r.entries, k)
			n++
		}
	}
	return n, nil
}
