// Package config loads runtime configuration for the games library CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/--config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u, --server    base URL of the games library API
//	-f, --session   file holding the signed-in token
//	-t, --timeout   per-request timeout
//
// # JSON schema
//
// Durations can be strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:3000",
//	  "session_file": "/home/me/.gameslib/session",
//	  "request_timeout": "5s"
//	}
package config
