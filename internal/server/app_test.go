package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lfgames/gameslib/internal/logging"
	"github.com/lfgames/gameslib/internal/server/config"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/repositories/blacklist"
	"github.com/lfgames/gameslib/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageBackend = config.BackendMemory
	c.EndpointAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	c.LogLevel = "error"
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.gameService)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	c := memoryConfig()
	c.LogLevel = "loud"
	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestNewApp_UnknownBackend(t *testing.T) {
	c := memoryConfig()
	c.StorageBackend = "sqlite"
	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "db init error")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app := newApp(memoryConfig(), logging.Nop{}, repomanager.NewMemoryRepositoryManager())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}

// countingRepos counts sweeps over the memory blacklist.
type countingRepos struct {
	*repomanager.MemoryRepositoryManager
	sweeps atomic.Int32
}

func (r *countingRepos) Blacklist() blacklist.Repository {
	return &countingBlacklist{Repository: r.MemoryRepositoryManager.Blacklist(), sweeps: &r.sweeps}
}

type countingBlacklist struct {
	blacklist.Repository
	sweeps *atomic.Int32
}

func (b *countingBlacklist) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	b.sweeps.Add(1)
	return b.Repository.DeleteExpired(ctx, now)
}

func TestBlacklistSweeper(t *testing.T) {
	c := memoryConfig()
	c.BlacklistSweepInterval = 10 * time.Millisecond
	repos := &countingRepos{MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager()}
	app := newApp(c, logging.Nop{}, repos)

	bl := repos.MemoryRepositoryManager.Blacklist()
	require.NoError(t, bl.Add(context.Background(), &models.BlacklistEntry{
		TokenHash: "old", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, bl.Add(context.Background(), &models.BlacklistEntry{
		TokenHash: "live", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.runBlacklistSweeper(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return repos.sweeps.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	// only the live entry survives: sweeping an hour ahead removes exactly one
	n, err := bl.DeleteExpired(context.Background(), time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestBlacklistSweeper_Disabled(t *testing.T) {
	c := memoryConfig()
	c.BlacklistSweepInterval = 0
	app := newApp(c, logging.Nop{}, repomanager.NewMemoryRepositoryManager())

	done := make(chan struct{})
	go func() {
		app.runBlacklistSweeper(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper should return immediately")
	}
}
