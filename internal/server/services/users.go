// Package services holds the business logic behind the HTTP handlers:
// accounts and sessions in UserService, game ownership in GameService.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/logging"
	"github.com/lfgames/gameslib/internal/server/auth"
	"github.com/lfgames/gameslib/internal/server/config"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/repositories/repomanager"
)

var (
	ErrMissingCredentials = fmt.Errorf("%w: missing email, password or user name", common.ErrorValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password shorter than %d characters", common.ErrorValidation, common.MinPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, common.MaxPasswordLength)
	ErrEmailTaken         = fmt.Errorf("%w: email", common.ErrorAlreadyExists)
	ErrEmailNotFound      = fmt.Errorf("%w: email", common.ErrorNotFound)
	ErrBadCredentials     = fmt.Errorf("%w: password mismatch", common.ErrorUnauthorized)
	ErrNotSignedIn        = fmt.Errorf("%w: user no longer exists", common.ErrorValidation)
	ErrUserLookup         = fmt.Errorf("%w: user lookup failed", common.ErrorInternal)
)

// Session is what a client receives after registering or signing in.
type Session struct {
	Token string
	User  *models.User
	Games []*models.Game
}

type UserService struct {
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	tokenTTL    time.Duration
	now         func() time.Time
	logger      logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		issuer:      auth.NewIssuer([]byte(cfg.SecretKey)),
		tokenTTL:    cfg.SignInTokenTTL,
		now:         time.Now,
		logger:      logger.With("module", "users"),
	}
}

// NormalizeEmail trims and lower-cases an address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs it in.
func (s *UserService) Register(ctx context.Context, email, password, userName string) (*Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" || userName == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) < common.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(password) > common.MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	repo := s.repomanager.Users()

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{Email: email, UserName: userName, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return &Session{Token: token, User: user, Games: []*models.Game{}}, nil
}

// SignIn checks credentials and returns a fresh token with the user's games.
// The user name is required but takes no part in the identity check.
func (s *UserService) SignIn(ctx context.Context, email, password, userName string) (*Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" || userName == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	games, err := s.repomanager.Games().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading games: %w", err)
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)
	return &Session{Token: token, User: user, Games: games}, nil
}

// Authenticate resolves a raw bearer token to its user. Verification runs
// before the blacklist lookup, so an expired token reports
// common.ErrTokenExpired even when it was also revoked.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error) {
	claims, err := s.issuer.WithClock(s.now).Verify(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.repomanager.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUserLookup, err)
	}

	revoked, err := s.repomanager.Blacklist().Exists(ctx, auth.HashToken(token), user.ID, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUserLookup, err)
	}
	if revoked {
		return nil, nil, common.ErrTokenRevoked
	}

	return user, claims, nil
}

// SignOut revokes token until expiresAt. Revoking an already revoked token
// succeeds.
func (s *UserService) SignOut(ctx context.Context, userID, token string, expiresAt time.Time) error {
	if _, err := s.repomanager.Users().GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotSignedIn
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	err := s.repomanager.Blacklist().Add(ctx, &models.BlacklistEntry{
		TokenHash: auth.HashToken(token),
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: s.now(),
	})
	if err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		return fmt.Errorf("error revoking token: %w", err)
	}

	s.logger.Info(ctx, "user signed out", "user_id", userID)
	return nil
}

// PruneBlacklist drops revoked tokens that have expired on their own.
func (s *UserService) PruneBlacklist(ctx context.Context) (int64, error) {
	n, err := s.repomanager.Blacklist().DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error pruning blacklist: %w", err)
	}
	return n, nil
}

func (s *UserService) issueToken(userID string) (string, error) {
	token, err := s.issuer.WithClock(s.now).Issue(userID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return token, nil
}
