// Package rest exposes the games library over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lfgames/gameslib/internal/logging"
	"github.com/lfgames/gameslib/internal/server/auth"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, email, password, userName string) (*services.Session, error)
	SignIn(ctx context.Context, email, password, userName string) (*services.Session, error)
	Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error)
	SignOut(ctx context.Context, userID, token string, expiresAt time.Time) error
}

type GameService interface {
	Add(ctx context.Context, userID string, game *models.Game) (*models.Game, error)
	List(ctx context.Context, userID string) ([]*models.Game, error)
	SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error)
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	users           UserService
	games           GameService
	logger          logging.Logger
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, us UserService, gs GameService) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		users:           us,
		games:           gs,
		logger:          l.With("module", "http_server"),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)
	r.POST("/user", s.register)
	r.POST("/signin", s.signIn)

	protected := r.Group("/")
	protected.Use(s.authGate())
	{
		protected.GET("/user", s.profile)
		protected.GET("/signout", s.signOut)
		protected.POST("/games", s.addGame)
		protected.GET("/games", s.listGames)
		protected.PUT("/games/:gameId/completed", s.setCompleted)
	}

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
