// Package models defines server-side data models persisted by the repositories.
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	UserName     string    `json:"userName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
