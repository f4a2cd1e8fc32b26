// Package users declares the credential store and its Postgres, MongoDB and
// in-memory implementations.
package users

import (
	"context"

	"github.com/lfgames/gameslib/internal/server/models"
)

// Repository stores user accounts. Implementations return
// common.ErrorNotFound for unknown users and common.ErrorAlreadyExists when
// an email is already registered.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
