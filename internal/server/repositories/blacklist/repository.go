// Package blacklist stores revoked bearer tokens until their natural expiry.
package blacklist

import (
	"context"
	"time"

	"github.com/lfgames/gameslib/internal/server/models"
)

// Repository records revoked tokens by hash. Entries whose ExpiresAt is not
// after now are treated as absent.
type Repository interface {
	// Add records entry. A second entry for the same hash returns
	// common.ErrorAlreadyExists.
	Add(ctx context.Context, entry *models.BlacklistEntry) error
	Exists(ctx context.Context, tokenHash, userID string, now time.Time) (bool, error)
	// DeleteExpired removes entries that expired at or before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
