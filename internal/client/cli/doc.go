// Package cli implements the interactive terminal client for the games
// library: a small REPL that signs in against the HTTP API, keeps the token
// in a session file between runs and manages the user's games.
package cli
