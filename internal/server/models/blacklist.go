package models

import "time"

// BlacklistEntry marks a token as revoked until ExpiresAt, the token's own
// expiry. Only the SHA-256 of the token is stored.
type BlacklistEntry struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
