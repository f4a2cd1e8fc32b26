package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	AddGame(ctx context.Context) error
	List(ctx context.Context) error
	Complete(ctx context.Context, args []string, completed bool) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. It returns
// on EOF or on "exit"/"quit".
//
//	Not logged in:
//	  - help              show available commands
//	  - register          create an account
//	  - login             sign in
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - help              show available commands
//	  - whoami            show the signed-in user
//	  - add               add a game to the library
//	  - (l)ist            list games, newest first
//	  - done <gameId>     mark a game completed
//	  - undone <gameId>   clear the completed flag
//	  - logout            sign out and revoke the token
//	  - exit | quit       leave the program
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("games %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		err = nil
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, add, (l)ist, done <gameId>, undone <gameId>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "add":
			err = a.AddGame(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "done":
			err = a.Complete(ctx, args, true)

		case "undone":
			err = a.Complete(ctx, args, false)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s) ", a.userName)
	}
	if a.isLoggedIn() {
		return "(signed in) "
	}
	return ""
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
