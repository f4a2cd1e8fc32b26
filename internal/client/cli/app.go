package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/lfgames/gameslib/internal/client/client"
	"github.com/lfgames/gameslib/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	session  *sessionFile
	token    string
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) (*App, error) {
	s := &sessionFile{path: c.SessionFile}
	token, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: api, session: s, token: token, reader: bufio.NewReader(in), out: out}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// Run restores the saved session if the server still accepts it, then
// starts the REPL.
func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to the games library CLI (type 'help' for commands)\n")

	if err := a.api.Ping(ctx); err != nil {
		a.printf("Server unavailable: %v\n", err)
	}

	if a.isLoggedIn() {
		user, err := a.api.Me(ctx, a.token)
		switch {
		case err == nil:
			a.userName = user.UserName
		case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrRevoked):
			_ = a.forgetSession()
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) rememberSession(token, userName string) error {
	a.token = token
	a.userName = userName
	return a.session.Save(token)
}

func (a *App) forgetSession() error {
	a.token = ""
	a.userName = ""
	return a.session.Clear()
}
