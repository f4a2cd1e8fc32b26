// Package games stores per-user game ownership records.
package games

import (
	"context"

	"github.com/lfgames/gameslib/internal/server/models"
)

// Repository persists games keyed by (GameID, UserID).
type Repository interface {
	// Create stores game and fills in ID and CreatedAt. A second record for
	// the same (GameID, UserID) returns common.ErrorAlreadyExists.
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	Exists(ctx context.Context, userID string, gameID int64) (bool, error)
	// ListByUser returns the user's games, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Game, error)
	// SetCompleted updates the completed flag and returns the stored game, or
	// common.ErrorNotFound.
	SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error)
}
