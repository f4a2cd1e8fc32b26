package client

import (
	"context"

	"github.com/lfgames/gameslib/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error
	SignUp(ctx context.Context, email, password, userName string) (*models.Session, error)
	SignIn(ctx context.Context, email, password, userName string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*models.User, error)
	AddGame(ctx context.Context, token string, game *models.NewGame) (*models.Game, error)
	ListGames(ctx context.Context, token string) ([]*models.Game, error)
	SetCompleted(ctx context.Context, token string, gameID int64, completed bool) (*models.Game, error)
}
