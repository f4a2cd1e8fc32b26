// Package models defines the client-side view of API resources.
package models

import "time"

type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

type Game struct {
	ID               string    `json:"_id"`
	GameID           int64     `json:"gameId"`
	Name             string    `json:"name"`
	CoverURL         string    `json:"cover_url"`
	CoverImageID     string    `json:"cover_image_id"`
	TotalRating      float64   `json:"total_rating"`
	FirstReleaseDate int64     `json:"first_release_date"`
	Platforms        []string  `json:"platforms"`
	Genres           []string  `json:"genres"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Session is returned by sign-up and sign-in. Games is empty after sign-up.
type Session struct {
	Token string  `json:"token"`
	User  User    `json:"user"`
	Games []*Game `json:"games"`
}

// NewGame is the payload for adding a game to the library.
type NewGame struct {
	GameID           int64    `json:"gameId"`
	Name             string   `json:"name"`
	Cover            Cover    `json:"cover"`
	TotalRating      float64  `json:"total_rating,omitempty"`
	FirstReleaseDate int64    `json:"first_release_date,omitempty"`
	Platforms        []string `json:"platforms"`
	Genres           []string `json:"genres"`
	Completed        bool     `json:"completed"`
}

type Cover struct {
	URL     string `json:"url,omitempty"`
	ImageID string `json:"image_id,omitempty"`
}
