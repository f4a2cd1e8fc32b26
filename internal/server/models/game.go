package models

import "time"

// Game is a user's ownership record for an external game. The pair
// (GameID, UserID) is unique.
type Game struct {
	ID               string    `json:"_id"`
	GameID           int64     `json:"gameId"`
	UserID           string    `json:"user"`
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
