package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/lfgames/gameslib/internal/client/models"
)

func (a *App) AddGame(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	rawID, err := getSimpleText(a.reader, "Enter game id", a.out)
	if err != nil {
		return err
	}
	gameID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || gameID <= 0 {
		return errors.New("game id must be a positive number")
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	platforms, err := GetList(a.reader, "Enter platforms", a.out)
	if err != nil {
		return err
	}
	genres, err := GetList(a.reader, "Enter genres", a.out)
	if err != nil {
		return err
	}

	g, err := a.api.AddGame(ctx, a.token, &models.NewGame{
		GameID:    gameID,
		Name:      name,
		Platforms: platforms,
		Genres:    genres,
	})
	if err != nil {
		return a.sessionError(err)
	}

	a.printf("Added %s\n", g.Name)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	games, err := a.api.ListGames(ctx, a.token)
	if err != nil {
		return a.sessionError(err)
	}
	if len(games) == 0 {
		a.printf("No games yet\n")
		return nil
	}

	for _, g := range games {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		a.printf("[%s] %-8d %s  %s\n", mark, g.GameID, g.Name, strings.Join(g.Platforms, ", "))
	}
	return nil
}

// Complete sets the completed flag of the game named in args[0].
func (a *App) Complete(ctx context.Context, args []string, completed bool) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) == 0 {
		return errors.New("usage: done|undone <gameId>")
	}
	gameID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.New("game id must be a number")
	}

	g, err := a.api.SetCompleted(ctx, a.token, gameID, completed)
	if err != nil {
		return a.sessionError(err)
	}

	state := "not completed"
	if g.Completed {
		state = "completed"
	}
	a.printf("%s marked %s\n", g.Name, state)
	return nil
}
