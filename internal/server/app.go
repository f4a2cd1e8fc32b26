// Package server wires the games library together: storage backend,
// services, HTTP API and the blacklist sweeper. It also handles signals and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lfgames/gameslib/internal/logging"
	"github.com/lfgames/gameslib/internal/server/config"
	"github.com/lfgames/gameslib/internal/server/repositories/repomanager"
	"github.com/lfgames/gameslib/internal/server/rest"
	"github.com/lfgames/gameslib/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
	gameService *services.GameService
}

// NewApp connects the configured backend and prepares its schema.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return newApp(c, logger, repos), nil
}

func newApp(c *config.Config, logger logging.Logger, repos repomanager.RepositoryManager) *App {
	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		userService: services.NewUserService(repos, c, logger),
		gameService: services.NewGameService(repos, logger),
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddr, app.config.ShutdownTimeout, app.logger, app.userService, app.gameService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// runBlacklistSweeper prunes expired blacklist entries once at start and then
// every BlacklistSweepInterval until ctx is done. A zero interval disables it.
func (app *App) runBlacklistSweeper(ctx context.Context) {
	interval := app.config.BlacklistSweepInterval
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.pruneBlacklist(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.pruneBlacklist(ctx)
		}
	}
}

func (app *App) pruneBlacklist(ctx context.Context) {
	n, err := app.userService.PruneBlacklist(ctx)
	if err != nil {
		app.logger.Error(ctx, "blacklist sweep failed", "error", err)
		return
	}
	if n > 0 {
		app.logger.Info(ctx, "blacklist swept", "removed", n)
	}
}

// Run blocks until a signal arrives, ctx is cancelled or the HTTP server
// fails, then closes the storage backend.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.runBlacklistSweeper(ctx)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.repos.Close(closeCtx); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
