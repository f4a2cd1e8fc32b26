package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/logging"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/repositories/repomanager"
)

var (
	ErrMalformedGame = fmt.Errorf("%w: game payload", common.ErrorValidation)
	ErrAlreadyOwned  = fmt.Errorf("%w: game", common.ErrorAlreadyExists)
	ErrGameNotFound  = fmt.Errorf("%w: game", common.ErrorNotFound)
)

type GameService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewGameService(m repomanager.RepositoryManager, logger logging.Logger) *GameService {
	return &GameService{repomanager: m, logger: logger.With("module", "games")}
}

// Add records that userID owns game. The existence check only picks the
// friendlier error; the store's unique key is what prevents duplicates.
func (s *GameService) Add(ctx context.Context, userID string, game *models.Game) (*models.Game, error) {
	if game == nil || game.GameID == 0 {
		return nil, ErrMalformedGame
	}

	repo := s.repomanager.Games()

	owned, err := repo.Exists(ctx, userID, game.GameID)
	if err != nil {
		return nil, fmt.Errorf("error searching game: %w", err)
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	g := *game
	g.UserID = userID
	created, err := repo.Create(ctx, &g)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrAlreadyOwned
		}
		return nil, fmt.Errorf("error creating game: %w", err)
	}

	s.logger.Info(ctx, "game added", "user_id", userID, "game_id", created.GameID)
	return created, nil
}

func (s *GameService) List(ctx context.Context, userID string) ([]*models.Game, error) {
	games, err := s.repomanager.Games().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading games: %w", err)
	}
	return games, nil
}

func (s *GameService) SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error) {
	if gameID <= 0 {
		return nil, ErrMalformedGame
	}

	g, err := s.repomanager.Games().SetCompleted(ctx, userID, gameID, completed)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error updating game: %w", err)
	}
	return g, nil
}
