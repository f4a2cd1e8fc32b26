package cli

import (
	"context"
	"errors"

	"github.com/lfgames/gameslib/internal/client/client"
	"github.com/lfgames/gameslib/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

type credentialsInput struct {
	email, userName string
	password        []byte
}

func (a *App) readCredentials() (*credentialsInput, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return nil, err
	}
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return nil, err
	}
	return &credentialsInput{email: email, userName: userName, password: password}, nil
}

// Register creates an account and keeps the returned session.
func (a *App) Register(ctx context.Context) error {
	in, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(in.password)

	sess, err := a.api.SignUp(ctx, in.email, string(in.password), in.userName)
	if err != nil {
		return err
	}
	if err := a.rememberSession(sess.Token, sess.User.UserName); err != nil {
		return err
	}

	a.printf("Registered as %s\n", sess.User.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	in, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(in.password)

	sess, err := a.api.SignIn(ctx, in.email, string(in.password), in.userName)
	if err != nil {
		return err
	}
	if err := a.rememberSession(sess.Token, sess.User.UserName); err != nil {
		return err
	}

	a.printf("Signed in, %d game(s) in your library\n", len(sess.Games))
	return nil
}

// Logout revokes the token on the server and forgets it locally. A token the
// server already rejects is forgotten as well.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	err := a.api.SignOut(ctx, a.token)
	if err != nil && !errors.Is(err, client.ErrRevoked) && !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	if err := a.forgetSession(); err != nil {
		return err
	}

	a.printf("Signed out\n")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	user, err := a.api.Me(ctx, a.token)
	if err != nil {
		return a.sessionError(err)
	}
	a.userName = user.UserName
	a.printf("%s <%s>\n", user.UserName, user.Email)
	return nil
}

// sessionError drops a session the server no longer accepts.
func (a *App) sessionError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrRevoked) {
		_ = a.forgetSession()
		return errors.New("session expired, please log in again")
	}
	return err
}
