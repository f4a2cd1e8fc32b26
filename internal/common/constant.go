package common

const (
	// AuthorizationHeaderName carries the bearer token on protected requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is stripped from the Authorization header value.
	BearerPrefix = "Bearer "

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8

	// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
	MaxPasswordLength = 72
)
