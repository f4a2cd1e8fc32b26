// Package client talks to the games library HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI. HTTPClient
// implements it over net/http with JSON bodies and bearer tokens.
//
// # Error Handling
//
// Transport failures map to ErrUnavailable, 401 to ErrUnauthorized and 402 to
// ErrRevoked. Any other non-2xx answer is returned as *APIError carrying the
// status code and the server's message.
package client
